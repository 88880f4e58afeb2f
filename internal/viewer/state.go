// Package viewer holds the viewer's mutable state and the pure logic that
// turns key input into transform changes and transform state into matrices.
package viewer

import "github.com/go-gl/mathgl/mgl32"

// Transform is the user-controlled model transform of the glyph.
// Rotation is in degrees and applied X, then Y, then Z.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

// DefaultTransform returns the reset pose.
func DefaultTransform() Transform {
	return Transform{
		Translation: mgl32.Vec3{0, 0, -10},
		Rotation:    mgl32.Vec3{0, 0, 0},
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// State is everything that survives from one frame to the next.
type State struct {
	Transform
	View ViewMode
	Mode TransformMode
	Quit bool
}

func NewState() *State {
	return &State{Transform: DefaultTransform()}
}

// Reset restores the transform. Modes are left alone.
func (s *State) Reset() {
	s.Transform = DefaultTransform()
}
