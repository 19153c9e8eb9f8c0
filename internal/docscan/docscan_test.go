package docscan

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// whiteRectOnBlack draws a filled white rectangle onto a black canvas.
func whiteRectOnBlack(canvasW, canvasH int, rect image.Rectangle) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(img, rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	return img
}

func TestRectify(t *testing.T) {
	t.Run("axis-aligned document", func(t *testing.T) {
		src := whiteRectOnBlack(300, 250, image.Rect(50, 50, 250, 200))

		out, err := Rectify(src)
		require.NoError(t, err)
		require.NotNil(t, out)

		// output should match the document region's proportions, give or
		// take a few pixels of edge-detection spread
		b := out.Bounds()
		require.InDelta(t, 200, b.Dx(), 10)
		require.InDelta(t, 150, b.Dy(), 10)
	})

	t.Run("blank image has no document", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 100, 100))
		draw.Draw(src, src.Bounds(), image.NewUniform(color.Gray{Y: 128}), image.Point{}, draw.Src)

		_, err := Rectify(src)
		require.ErrorIs(t, err, ErrNoDocument)
	})

	t.Run("triangle is rejected", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 200, 200))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		// filled right triangle
		for y := 40; y < 160; y++ {
			for x := 40; x < 40+(y-40); x++ {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}

		_, err := Rectify(img)
		require.ErrorIs(t, err, ErrNoDocument)
	})
}

func TestOrderQuad(t *testing.T) {
	got := orderQuad([]point{
		{90, 10}, {5, 80}, {10, 5}, {95, 85},
	})

	require.Equal(t, point{10, 5}, got.topLeft)
	require.Equal(t, point{90, 10}, got.topRight)
	require.Equal(t, point{95, 85}, got.bottomRight)
	require.Equal(t, point{5, 80}, got.bottomLeft)
}

func TestTargetSize(t *testing.T) {
	q := quad{
		topLeft:     point{0, 0},
		topRight:    point{100, 0},
		bottomRight: point{100, 60},
		bottomLeft:  point{0, 60},
	}

	w, h := targetSize(q)
	require.Equal(t, 100, w)
	require.Equal(t, 60, h)
}

func TestHomographyIdentity(t *testing.T) {
	corners := [4]point{{0, 0}, {99, 0}, {99, 49}, {0, 49}}
	h := homography(corners, corners)

	for _, p := range []point{{0, 0}, {50, 25}, {99, 49}, {10, 40}} {
		x, y := applyHomography(h, p.x, p.y)
		require.InDelta(t, p.x, x, 1e-6)
		require.InDelta(t, p.y, y, 1e-6)
	}
}

func TestApproxPolygonRectangle(t *testing.T) {
	// dense rectangle ring
	var pts []point
	for x := 0; x <= 100; x++ {
		pts = append(pts, point{float64(x), 0})
	}
	for y := 1; y <= 50; y++ {
		pts = append(pts, point{100, float64(y)})
	}
	for x := 99; x >= 0; x-- {
		pts = append(pts, point{float64(x), 50})
	}
	for y := 49; y >= 1; y-- {
		pts = append(pts, point{0, float64(y)})
	}

	c := contour{points: pts}
	approx := approxPolygon(pts, approxTolerance*c.perimeter())
	require.Len(t, approx, 4)
}

func TestContourAreaPerimeter(t *testing.T) {
	c := contour{points: []point{{0, 0}, {10, 0}, {10, 5}, {0, 5}}}
	require.InDelta(t, 50.0, c.area(), 1e-9)
	require.InDelta(t, 30.0, c.perimeter(), 1e-9)
}

func TestFindContoursSingleComponent(t *testing.T) {
	mask := newBinaryImage(20, 20)
	// hollow square ring
	for i := 5; i <= 15; i++ {
		mask.set(i, 5)
		mask.set(i, 15)
		mask.set(5, i)
		mask.set(15, i)
	}

	contours := findContours(mask)
	require.Len(t, contours, 1)
	require.InDelta(t, 100.0, contours[0].area(), 15)
	require.True(t, math.Abs(contours[0].perimeter()-40) < 10)
}
