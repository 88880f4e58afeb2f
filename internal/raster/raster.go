// Package raster draws wireframes into an image without a GL context.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA walk.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		set(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		set(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

func set(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// Project maps p through mvp to pixel coordinates with y growing downwards.
// ok is false when p falls outside the clip volume.
func Project(p mgl32.Vec3, mvp mgl32.Mat4, width, height int) (x, y int, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	for _, c := range ndc {
		if c < -1 || c > 1 {
			return 0, 0, false
		}
	}
	x = int(math.Round(float64((ndc[0] + 1) / 2 * float32(width-1))))
	y = int(math.Round(float64((1 - ndc[1]) / 2 * float32(height-1))))
	return x, y, true
}

// Lines draws every index pair of segments. Segments with an endpoint
// outside the clip volume are skipped and counted in the return value.
func Lines[S ~[2]uint32](img *image.RGBA, mvp mgl32.Mat4, vertices []mgl32.Vec3, segments []S, col color.RGBA) (clipped int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for _, s := range segments {
		x1, y1, ok1 := Project(vertices[s[0]], mvp, w, h)
		x2, y2, ok2 := Project(vertices[s[1]], mvp, w, h)
		if !ok1 || !ok2 {
			clipped++
			continue
		}
		DrawLine(img, x1, y1, x2, y2, col)
	}
	return clipped
}

// Count returns how many pixels of img equal col.
func Count(img *image.RGBA, col color.RGBA) int {
	n := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == col.R && img.Pix[i+1] == col.G && img.Pix[i+2] == col.B && img.Pix[i+3] == col.A {
			n++
		}
	}
	return n
}
