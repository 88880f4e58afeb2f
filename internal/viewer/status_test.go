package viewer

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	st := NewState()
	assert.Equal(t, "Mode: Translate | View: Perspective | T: 0.0,0.0,-10.0 R: 0,0,0 S: 1.0,1.0,1.0", Status(st))

	st.Mode = Rotate
	st.View = Top
	st.Translation = mgl32.Vec3{1.26, -0.5, -12}
	st.Rotation = mgl32.Vec3{-90, 44, 360}
	st.Scale = mgl32.Vec3{2.26, 0, -1}
	assert.Equal(t, "Mode: Rotate | View: Top (Oxz) | T: 1.3,-0.5,-12.0 R: -90,44,360 S: 2.3,0.0,-1.0", Status(st))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Glyph - "+Status(NewState()), Title("Glyph", NewState()))
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf)
	assert.Equal(t, Help, buf.String())
	assert.Contains(t, buf.String(), "TAB")
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "Scale", Scale.String())
	assert.Equal(t, "Unknown", TransformMode(7).String())
	assert.Equal(t, "Side (Oyz)", Side.String())
	assert.Equal(t, "Unknown", ViewMode(-1).String())
}
