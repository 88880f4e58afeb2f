package viewer

import "github.com/go-gl/mathgl/mgl32"

const (
	FieldOfView float32 = 45 // degrees
	Near        float32 = 0.1
	Far         float32 = 50
	Zoom        float32 = 10 // orthographic half-extent of the short side
	AxesLength  float32 = 5
)

// BaseOffset pushes the scene in front of the perspective camera.
var BaseOffset = mgl32.Vec3{0, 0, -10}

type eye struct {
	pos, up mgl32.Vec3
}

var eyes = map[ViewMode]eye{
	Front: {pos: mgl32.Vec3{0, 0, 10}, up: mgl32.Vec3{0, 1, 0}},
	Top:   {pos: mgl32.Vec3{0, 10, 0}, up: mgl32.Vec3{0, 0, -1}},
	Side:  {pos: mgl32.Vec3{10, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
}

// OrthoExtents returns the half width and half height of the orthographic
// box, keeping Zoom on the shorter side of the viewport.
func OrthoExtents(aspect float32) (halfWidth, halfHeight float32) {
	if aspect >= 1 {
		return Zoom * aspect, Zoom
	}
	return Zoom, Zoom / aspect
}

// Projection returns the lens for mode at the given width/height ratio.
func Projection(mode ViewMode, aspect float32) mgl32.Mat4 {
	if mode == Perspective {
		return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
	}
	w, h := OrthoExtents(aspect)
	return mgl32.Ortho(-w, w, -h, h, Near, Far)
}

// Camera returns the view matrix for mode. The perspective camera sits at
// the origin looking down -Z.
func Camera(mode ViewMode) mgl32.Mat4 {
	e, ok := eyes[mode]
	if !ok {
		return mgl32.Ident4()
	}
	return mgl32.LookAtV(e.pos, mgl32.Vec3{}, e.up)
}

func base(mode ViewMode) mgl32.Mat4 {
	if mode == Perspective {
		return mgl32.Translate3D(BaseOffset.Elem())
	}
	return mgl32.Ident4()
}

// AxesModel places the world axes. They ignore the user transform.
func AxesModel(mode ViewMode) mgl32.Mat4 {
	return base(mode)
}

// Model composes base offset, translation, rotation X, Y, Z and scale.
func Model(mode ViewMode, t Transform) mgl32.Mat4 {
	return base(mode).
		Mul4(mgl32.Translate3D(t.Translation.Elem())).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation[0]))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation[1]))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation[2]))).
		Mul4(mgl32.Scale3D(t.Scale.Elem()))
}

// Matrices is everything the renderer needs for one frame.
type Matrices struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Axes       mgl32.Mat4
	Model      mgl32.Mat4
}

// AxesMVP is the full transform for the world axes.
func (m Matrices) AxesMVP() mgl32.Mat4 {
	return m.Projection.Mul4(m.View).Mul4(m.Axes)
}

// ModelMVP is the full transform for the glyph.
func (m Matrices) ModelMVP() mgl32.Mat4 {
	return m.Projection.Mul4(m.View).Mul4(m.Model)
}

// Frame computes the matrices for st at the given aspect ratio.
func Frame(st *State, aspect float32) Matrices {
	return Matrices{
		Projection: Projection(st.View, aspect),
		View:       Camera(st.View),
		Axes:       AxesModel(st.View),
		Model:      Model(st.View, st.Transform),
	}
}
