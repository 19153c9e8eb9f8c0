package docscan

import (
	"image"
	"image/color"
	"math"
)

// quad holds the four document corners in a fixed order.
type quad struct {
	topLeft, topRight, bottomRight, bottomLeft point
}

// orderQuad assigns the four vertices of a convex quadrilateral to corners.
// The top-left corner has the smallest x+y sum, the bottom-right the largest;
// the top-right has the smallest y-x difference, the bottom-left the largest.
func orderQuad(pts []point) quad {
	var q quad
	minSum, maxSum := math.Inf(1), math.Inf(-1)
	minDiff, maxDiff := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		sum := p.x + p.y
		diff := p.y - p.x
		if sum < minSum {
			minSum = sum
			q.topLeft = p
		}
		if sum > maxSum {
			maxSum = sum
			q.bottomRight = p
		}
		if diff < minDiff {
			minDiff = diff
			q.topRight = p
		}
		if diff > maxDiff {
			maxDiff = diff
			q.bottomLeft = p
		}
	}

	return q
}

// targetSize derives the output dimensions from the longer of each pair of
// opposing edges so the flattened document keeps its apparent proportions.
func targetSize(q quad) (int, int) {
	top := math.Hypot(q.topRight.x-q.topLeft.x, q.topRight.y-q.topLeft.y)
	bottom := math.Hypot(q.bottomRight.x-q.bottomLeft.x, q.bottomRight.y-q.bottomLeft.y)
	left := math.Hypot(q.bottomLeft.x-q.topLeft.x, q.bottomLeft.y-q.topLeft.y)
	right := math.Hypot(q.bottomRight.x-q.topRight.x, q.bottomRight.y-q.topRight.y)

	w := int(math.Max(top, bottom))
	h := int(math.Max(left, right))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return w, h
}

// warpPerspective maps the quadrilateral region of src onto a w x h
// rectangle. The homography is computed from the rectangle corners to the
// source corners, so each destination pixel samples the source directly with
// bilinear interpolation.
func warpPerspective(src image.Image, q quad, w, h int) image.Image {
	hm := homography(
		[4]point{{0, 0}, {float64(w - 1), 0}, {float64(w - 1), float64(h - 1)}, {0, float64(h - 1)}},
		[4]point{q.topLeft, q.topRight, q.bottomRight, q.bottomLeft},
	)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := applyHomography(hm, float64(x), float64(y))
			dst.SetRGBA(x, y, sampleBilinear(src, fx, fy))
		}
	}

	return dst
}

// homography solves for the 3x3 projective transform mapping the four src
// points onto the four dst points. The 8 unknowns (h33 fixed at 1) come from
// the standard direct linear system, solved with gaussian elimination and
// partial pivoting.
func homography(src, dst [4]point) [9]float64 {
	var m [8][9]float64
	for i := 0; i < 4; i++ {
		sx, sy := src[i].x, src[i].y
		dx, dy := dst[i].x, dst[i].y
		m[2*i] = [9]float64{sx, sy, 1, 0, 0, 0, -dx * sx, -dx * sy, dx}
		m[2*i+1] = [9]float64{0, 0, 0, sx, sy, 1, -dy * sx, -dy * sy, dy}
	}

	for col := 0; col < 8; col++ {
		pivot := col
		for r := col + 1; r < 8; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		m[col], m[pivot] = m[pivot], m[col]
		if m[col][col] == 0 {
			continue
		}
		for r := col + 1; r < 8; r++ {
			f := m[r][col] / m[col][col]
			for c := col; c < 9; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}

	var sol [8]float64
	for r := 7; r >= 0; r-- {
		if m[r][r] == 0 {
			continue
		}
		v := m[r][8]
		for c := r + 1; c < 8; c++ {
			v -= m[r][c] * sol[c]
		}
		sol[r] = v / m[r][r]
	}

	return [9]float64{sol[0], sol[1], sol[2], sol[3], sol[4], sol[5], sol[6], sol[7], 1}
}

// applyHomography maps destination coordinates through h into source space.
func applyHomography(h [9]float64, x, y float64) (float64, float64) {
	d := h[6]*x + h[7]*y + h[8]
	if d == 0 {
		return 0, 0
	}

	return (h[0]*x + h[1]*y + h[2]) / d, (h[3]*x + h[4]*y + h[5]) / d
}

// sampleBilinear interpolates the source image at a fractional coordinate,
// clamping to the image bounds.
func sampleBilinear(src image.Image, fx, fy float64) color.RGBA {
	b := src.Bounds()
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}

		return v
	}

	x0 := clamp(int(math.Floor(fx)), b.Min.X, b.Max.X-1)
	y0 := clamp(int(math.Floor(fy)), b.Min.Y, b.Max.Y-1)
	x1 := clamp(x0+1, b.Min.X, b.Max.X-1)
	y1 := clamp(y0+1, b.Min.Y, b.Max.Y-1)
	wx := fx - float64(x0)
	wy := fy - float64(y0)
	if wx < 0 {
		wx = 0
	}
	if wy < 0 {
		wy = 0
	}

	mix := func(a, b uint32, t float64) float64 {
		return float64(a)*(1-t) + float64(b)*t
	}

	r00, g00, b00, a00 := src.At(x0, y0).RGBA()
	r10, g10, b10, a10 := src.At(x1, y0).RGBA()
	r01, g01, b01, a01 := src.At(x0, y1).RGBA()
	r11, g11, b11, a11 := src.At(x1, y1).RGBA()

	blend := func(c00, c10, c01, c11 uint32) uint8 {
		top := mix(c00, c10, wx)
		bot := mix(c01, c11, wx)

		return uint8(uint32(top*(1-wy)+bot*wy) >> 8)
	}

	return color.RGBA{
		R: blend(r00, r10, r01, r11),
		G: blend(g00, g10, g01, g11),
		B: blend(b00, b10, b01, b11),
		A: blend(a00, a10, a01, a11),
	}
}
