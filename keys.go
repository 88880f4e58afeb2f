package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"glyphview/internal/viewer"
)

var commandKeys = map[glfw.Key]viewer.Command{
	glfw.Key1:      viewer.ViewPerspective,
	glfw.Key2:      viewer.ViewFront,
	glfw.Key3:      viewer.ViewTop,
	glfw.Key4:      viewer.ViewSide,
	glfw.KeyTab:    viewer.CycleMode,
	glfw.KeyR:      viewer.ResetTransform,
	glfw.KeyEscape: viewer.Quit,
}

// keyboard collects key presses between frames. glfw delivers callbacks
// from PollEvents on the main thread, so no locking is needed.
type keyboard struct {
	window  *glfw.Window
	pending []viewer.Command
}

func newKeyboard(window *glfw.Window) *keyboard {
	kb := &keyboard{window: window}
	window.SetKeyCallback(kb.onKey)
	return kb
}

func (kb *keyboard) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if cmd, ok := commandKeys[key]; ok {
		kb.pending = append(kb.pending, cmd)
	}
}

func (kb *keyboard) down(key glfw.Key) bool {
	return kb.window.GetKey(key) == glfw.Press
}

// poll drains queued presses and samples the held adjustment keys.
func (kb *keyboard) poll() viewer.Input {
	in := viewer.Input{
		Commands: kb.pending,
		Held: viewer.Held{
			Left:   kb.down(glfw.KeyLeft),
			Right:  kb.down(glfw.KeyRight),
			Up:     kb.down(glfw.KeyUp),
			Down:   kb.down(glfw.KeyDown),
			PageUp: kb.down(glfw.KeyPageUp),
			PageDn: kb.down(glfw.KeyPageDown),
		},
	}
	if kb.window.ShouldClose() {
		in.Commands = append(in.Commands, viewer.Quit)
	}
	kb.pending = nil
	return in
}
