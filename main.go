package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"glyphview/internal/glyph"
	"glyphview/internal/viewer"
)

const (
	width  = 1000
	height = 700
	title  = "Glyph Viewer"

	frameRate = 60
)

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	r, err := newRenderer(glyph.Build())
	if err != nil {
		log.Fatalln(err)
	}
	defer r.delete()

	// The framebuffer can be larger than the window on HiDPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	aspect := float32(width) / float32(height)

	viewer.PrintHelp(os.Stdout)

	st := viewer.NewState()
	controller := viewer.NewController(os.Stdout)
	kb := newKeyboard(window)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for !st.Quit {
		glfw.PollEvents()
		controller.Apply(st, kb.poll())

		r.draw(st, aspect)
		window.SetTitle(viewer.Title(title, st))
		window.SwapBuffers()

		<-ticker.C
	}
}
