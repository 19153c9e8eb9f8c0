// Package docscan rectifies photographed documents. It detects the
// document's quadrilateral boundary in the photo and produces a flattened,
// perspective-corrected image suitable for text recognition.
//
// The pipeline mirrors the classic document-scanner recipe: grayscale,
// gaussian blur, edge detection, external contour extraction, polygonal
// approximation of the largest contours, then a 4-point perspective
// transform. It is deterministic and never mutates its input.
package docscan

import (
	"image"
	"sort"

	"verifier/pkg/serrors"
)

// ErrNoDocument is returned when no 4-vertex contour is found among the
// largest detected contours, i.e. no document region could be located.
var ErrNoDocument = serrors.NewKind("NO_DOCUMENT")

// Edge detection thresholds. Gradient magnitudes above highThreshold are
// strong edges; magnitudes between the two survive only when connected to a
// strong edge.
const (
	lowThreshold  = 75
	highThreshold = 200
)

// maxContours is how many of the largest contours are scanned for a
// quadrilateral.
const maxContours = 5

// approxTolerance is the polygonal approximation tolerance as a fraction of
// the contour perimeter.
const approxTolerance = 0.02

// Rectify locates the document boundary in img and returns a
// perspective-corrected image of the document. It fails with ErrNoDocument
// when no quadrilateral boundary is detected; callers reject the document
// without treating this as a crash-worthy failure.
func Rectify(img image.Image) (image.Image, error) {
	gray := toGray(img)
	blurred := gaussianBlur(gray)
	edges := detectEdges(blurred, lowThreshold, highThreshold)

	contours := findContours(edges)
	sort.SliceStable(contours, func(i, j int) bool {
		return contours[i].area() > contours[j].area()
	})
	if len(contours) > maxContours {
		contours = contours[:maxContours]
	}

	var quad []point
	for _, c := range contours {
		approx := approxPolygon(c.points, approxTolerance*c.perimeter())
		if len(approx) == 4 {
			quad = approx

			break
		}
	}
	if quad == nil {
		return nil, serrors.With(ErrNoDocument, "no document region detected")
	}

	corners := orderQuad(quad)
	w, h := targetSize(corners)

	return warpPerspective(img, corners, w, h), nil
}

// toGray converts any image to 8-bit grayscale using the standard luma
// weights.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			// 16-bit channels; weights sum to 1.
			luma := (299*r + 587*g + 114*bl) / 1000
			gray.SetGray(x, y, colorGray(uint8(luma>>8)))
		}
	}

	return gray
}

// gaussianBlur applies a separable 5x5 gaussian kernel (1 4 6 4 1)/16 to
// suppress noise before edge detection.
func gaussianBlur(src *image.Gray) *image.Gray {
	kernel := [5]int{1, 4, 6, 4, 1}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= w {
			return w - 1
		}

		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= h {
			return h - 1
		}

		return y
	}

	// horizontal pass
	tmp := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for k := -2; k <= 2; k++ {
				sum += kernel[k+2] * int(src.GrayAt(b.Min.X+clampX(x+k), b.Min.Y+y).Y)
			}
			tmp.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(uint8(sum/16)))
		}
	}

	// vertical pass
	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for k := -2; k <= 2; k++ {
				sum += kernel[k+2] * int(tmp.GrayAt(b.Min.X+x, b.Min.Y+clampY(y+k)).Y)
			}
			dst.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(uint8(sum/16)))
		}
	}

	return dst
}

// detectEdges runs a sobel gradient pass followed by double-threshold
// hysteresis: pixels above hi are edges, pixels between lo and hi become
// edges only when 8-connected to one.
func detectEdges(src *image.Gray, lo, hi int) *binaryImage {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	mag := make([]int, w*h)

	at := func(x, y int) int {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}

		return int(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			if gx < 0 {
				gx = -gx
			}
			if gy < 0 {
				gy = -gy
			}
			mag[y*w+x] = gx + gy
		}
	}

	edges := newBinaryImage(w, h)
	// strong edges seed a BFS that promotes connected weak edges
	var queue []int
	for i, m := range mag {
		if m >= hi {
			edges.set(i%w, i/w)
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				if !edges.get(nx, ny) && mag[ni] >= lo {
					edges.set(nx, ny)
					queue = append(queue, ni)
				}
			}
		}
	}

	return edges
}
