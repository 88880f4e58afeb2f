package viewer

import (
	"fmt"
	"io"
)

// Per-frame increments for held keys.
const (
	TranslateStep float32 = 0.1
	RotateStep    float32 = 2.0
	ScaleStep     float32 = 0.05
)

// Command is a discrete key press.
type Command int

const (
	ViewPerspective Command = iota
	ViewFront
	ViewTop
	ViewSide
	CycleMode
	ResetTransform
	Quit
)

// Held is the set of adjustment keys currently down.
type Held struct {
	Left, Right    bool
	Up, Down       bool
	PageUp, PageDn bool
}

// Input is one frame's worth of polled input.
type Input struct {
	Commands []Command
	Held     Held
}

// Controller applies input to a State.
type Controller struct {
	out io.Writer
}

// NewController returns a controller that reports mode changes to out.
func NewController(out io.Writer) *Controller {
	if out == nil {
		out = io.Discard
	}
	return &Controller{out: out}
}

// Apply runs the frame's commands in order, then the held keys under the
// resulting transform mode.
func (c *Controller) Apply(st *State, in Input) {
	for _, cmd := range in.Commands {
		c.command(st, cmd)
	}
	adjust(st, in.Held)
}

func (c *Controller) command(st *State, cmd Command) {
	switch cmd {
	case ViewPerspective:
		st.View = Perspective
	case ViewFront:
		st.View = Front
	case ViewTop:
		st.View = Top
	case ViewSide:
		st.View = Side
	case CycleMode:
		st.Mode = st.Mode.Next()
		fmt.Fprintf(c.out, "Mode: %s\n", st.Mode)
	case ResetTransform:
		st.Reset()
	case Quit:
		st.Quit = true
	}
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func axis(neg, pos bool) float32 {
	var d float32
	if neg {
		d--
	}
	if pos {
		d++
	}
	return d
}

func adjust(st *State, h Held) {
	x := axis(h.Left, h.Right)
	y := axis(h.Down, h.Up)
	z := axis(h.PageDn, h.PageUp)

	switch st.Mode {
	case Translate:
		st.Translation[0] += x * TranslateStep
		st.Translation[1] += y * TranslateStep
		st.Translation[2] += z * TranslateStep
	case Rotate:
		// X and Z angles run against their key axes.
		st.Rotation[1] += x * RotateStep
		st.Rotation[0] -= y * RotateStep
		st.Rotation[2] -= z * RotateStep
	case Scale:
		st.Scale[0] += x * ScaleStep
		st.Scale[1] += y * ScaleStep
		st.Scale[2] += z * ScaleStep
	}
}
