package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"glyphview/internal/glyph"
	"glyphview/internal/viewer"
)

var green = color.RGBA{0, 255, 0, 255}

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, 0, 0, 9, 0, green)
	assert.Equal(t, 10, Count(img, green))
	assert.Equal(t, green, img.RGBAAt(9, 0))

	DrawLine(img, 0, 0, 0, 0, green)
	assert.Equal(t, 10, Count(img, green))

	// Off-image pixels are dropped.
	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, -5, 5, 4, 5, green)
	assert.Equal(t, 5, Count(img, green))
}

func TestProject(t *testing.T) {
	x, y, ok := Project(mgl32.Vec3{0, 0, 0}, mgl32.Ident4(), 101, 51)
	assert.True(t, ok)
	assert.Equal(t, 50, x)
	assert.Equal(t, 25, y)

	x, y, ok = Project(mgl32.Vec3{-1, 1, 0}, mgl32.Ident4(), 101, 51)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	_, _, ok = Project(mgl32.Vec3{2, 0, 0}, mgl32.Ident4(), 101, 51)
	assert.False(t, ok)
}

func render(st *viewer.State) (*image.RGBA, int) {
	const width, height = 200, 140
	k := glyph.Build()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	m := viewer.Frame(st, float32(width)/float32(height))
	clipped := Lines(img, m.ModelMVP(), k.Vertices, k.Segments, green)
	return img, clipped
}

func TestGlyphVisibleInEveryView(t *testing.T) {
	for _, view := range []viewer.ViewMode{viewer.Perspective, viewer.Front, viewer.Side} {
		st := viewer.NewState()
		st.View = view
		img, clipped := render(st)
		assert.Zero(t, clipped, "%s", view)
		assert.Greater(t, Count(img, green), 50, "%s", view)
	}
}

func TestTopViewNeedsTranslation(t *testing.T) {
	st := viewer.NewState()
	st.View = viewer.Top
	_, clipped := render(st)
	assert.NotZero(t, clipped)

	// Bringing the glyph back to the origin centres it under the top camera.
	st.Translation = mgl32.Vec3{}
	img, clipped := render(st)
	assert.Zero(t, clipped)
	assert.Greater(t, Count(img, green), 10)
}

func TestScaleShrinksFootprint(t *testing.T) {
	st := viewer.NewState()
	st.View = viewer.Front
	big, _ := render(st)

	st.Scale = mgl32.Vec3{0.5, 0.5, 0.5}
	small, _ := render(st)
	assert.Less(t, Count(small, green), Count(big, green))

	// Zero scale collapses the glyph without failing.
	st.Scale = mgl32.Vec3{}
	_, clipped := render(st)
	assert.Zero(t, clipped)
}

func TestViewSwitchKeepsTransform(t *testing.T) {
	st := viewer.NewState()
	st.Rotation = mgl32.Vec3{10, 20, 30}
	before := st.Transform
	c := viewer.NewController(nil)
	for _, cmd := range []viewer.Command{viewer.ViewTop, viewer.ViewSide, viewer.ViewPerspective} {
		c.Apply(st, viewer.Input{Commands: []viewer.Command{cmd}})
		render(st)
	}
	assert.Equal(t, before, st.Transform)
}
