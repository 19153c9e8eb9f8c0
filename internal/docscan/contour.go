package docscan

import (
	"image/color"
	"math"
)

func colorGray(v uint8) color.Gray { return color.Gray{Y: v} }

// binaryImage is a compact 1-bit-per-pixel mask with (0,0) at the top left.
type binaryImage struct {
	w, h int
	bits []bool
}

func newBinaryImage(w, h int) *binaryImage {
	return &binaryImage{w: w, h: h, bits: make([]bool, w*h)}
}

func (b *binaryImage) set(x, y int) { b.bits[y*b.w+x] = true }

func (b *binaryImage) get(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}

	return b.bits[y*b.w+x]
}

// point is an image coordinate. Float so polygon approximation and the
// perspective solve can share the type.
type point struct {
	x, y float64
}

// contour is the external boundary of one connected edge component, traced
// clockwise.
type contour struct {
	points []point
}

// area returns the enclosed area computed with the shoelace formula.
func (c contour) area() float64 {
	n := len(c.points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += c.points[i].x*c.points[j].y - c.points[j].x*c.points[i].y
	}

	return math.Abs(sum) / 2
}

// perimeter returns the closed boundary length.
func (c contour) perimeter() float64 {
	n := len(c.points)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += math.Hypot(c.points[j].x-c.points[i].x, c.points[j].y-c.points[i].y)
	}

	return sum
}

// mooreOffsets enumerate the 8-neighborhood clockwise starting from west.
var mooreOffsets = [8][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// findContours labels 8-connected components of the edge mask and traces the
// external boundary of each with Moore-neighbor tracing. Interior holes are
// ignored; only external contours matter for document detection.
func findContours(edges *binaryImage) []contour {
	w, h := edges.w, edges.h
	labeled := make([]bool, w*h)
	var contours []contour

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !edges.get(x, y) || labeled[y*w+x] {
				continue
			}

			boundary := traceBoundary(edges, x, y)
			if len(boundary) >= 3 {
				contours = append(contours, contour{points: boundary})
			}

			// flood-fill the whole component so it is visited once
			stack := [][2]int{{x, y}}
			labeled[y*w+x] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, off := range mooreOffsets {
					nx, ny := p[0]+off[0], p[1]+off[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if edges.get(nx, ny) && !labeled[ny*w+nx] {
						labeled[ny*w+nx] = true
						stack = append(stack, [2]int{nx, ny})
					}
				}
			}
		}
	}

	return contours
}

// traceBoundary walks the external boundary of the component containing the
// start pixel, which must be the first foreground pixel of its component in
// scan order. The walk terminates when it re-enters the start pixel from the
// starting direction, or after visiting every boundary pixel once.
func traceBoundary(edges *binaryImage, sx, sy int) []point {
	var boundary []point
	boundary = append(boundary, point{float64(sx), float64(sy)})

	cx, cy := sx, sy
	// start searching from the west neighbor; scan order guarantees the
	// pixel above and to the left are background
	dir := 0
	for steps := 0; steps < 4*edges.w*edges.h; steps++ {
		found := false
		for i := 0; i < 8; i++ {
			d := (dir + i) % 8
			nx, ny := cx+mooreOffsets[d][0], cy+mooreOffsets[d][1]
			if edges.get(nx, ny) {
				cx, cy = nx, ny
				// back up two steps so the next scan starts just after the
				// pixel we came from
				dir = (d + 6) % 8
				found = true

				break
			}
		}
		if !found {
			// isolated pixel
			break
		}
		if cx == sx && cy == sy {
			break
		}
		boundary = append(boundary, point{float64(cx), float64(cy)})
	}

	return boundary
}

// approxPolygon simplifies a closed contour with the Douglas-Peucker
// algorithm using the given distance tolerance. The two mutually farthest
// points split the ring into two open chains that are simplified
// independently.
func approxPolygon(pts []point, epsilon float64) []point {
	n := len(pts)
	if n < 3 {
		return pts
	}

	// anchor the split at the two farthest-apart points
	ai, bi := 0, 0
	best := -1.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[j].x-pts[i].x, pts[j].y-pts[i].y)
			if d > best {
				best, ai, bi = d, i, j
			}
		}
	}

	chainA := append([]point{}, pts[ai:bi+1]...)
	chainB := append(append([]point{}, pts[bi:]...), pts[:ai+1]...)

	simpA := douglasPeucker(chainA, epsilon)
	simpB := douglasPeucker(chainB, epsilon)

	// drop the duplicated endpoints when joining the chains
	out := append([]point{}, simpA...)
	if len(simpB) > 2 {
		out = append(out, simpB[1:len(simpB)-1]...)
	}

	return out
}

// douglasPeucker simplifies an open polyline, keeping both endpoints.
func douglasPeucker(pts []point, epsilon float64) []point {
	if len(pts) < 3 {
		return pts
	}

	// find the point farthest from the chord
	maxDist := 0.0
	index := 0
	a, b := pts[0], pts[len(pts)-1]
	for i := 1; i < len(pts)-1; i++ {
		d := perpendicularDistance(pts[i], a, b)
		if d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist <= epsilon {
		return []point{a, b}
	}

	left := douglasPeucker(pts[:index+1], epsilon)
	right := douglasPeucker(pts[index:], epsilon)

	return append(left[:len(left)-1], right...)
}

// perpendicularDistance is the distance from p to the line through a and b.
func perpendicularDistance(p, a, b point) float64 {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(p.x-a.x, p.y-a.y)
	}

	return math.Abs(dy*p.x-dx*p.y+b.x*a.y-b.y*a.x) / length
}
