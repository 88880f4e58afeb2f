package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"glyphview/internal/glyph"
	"glyphview/internal/viewer"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec3 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(colour, 1.0);
		}
	` + "\x00"
)

var (
	backgroundColour = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}
	lineColour       = mgl32.Vec3{0, 1, 0}

	axisColours = [3]mgl32.Vec3{
		{1, 0, 0}, // X
		{0, 1, 0}, // Y
		{0, 0, 1}, // Z
	}
)

// mesh is a VAO with its position buffer and, for indexed meshes, an EBO.
type mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

type renderer struct {
	program      uint32
	mvpUniform   int32
	colorUniform int32

	glyph mesh
	axes  mesh
}

func newRenderer(k glyph.Glyph) (*renderer, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("invalid glyph: %w", err)
	}

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		program:      program,
		mvpUniform:   gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		colorUniform: gl.GetUniformLocation(program, gl.Str("colour\x00")),
	}
	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))

	r.glyph = newMesh(vertAttrib, k.Positions(), k.Indices())

	l := viewer.AxesLength
	r.axes = newMesh(vertAttrib, []float32{
		0, 0, 0, l, 0, 0,
		0, 0, 0, 0, l, 0,
		0, 0, 0, 0, 0, l,
	}, nil)

	// Global settings
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(backgroundColour[0], backgroundColour[1], backgroundColour[2], backgroundColour[3])

	return r, nil
}

func newMesh(attrib uint32, positions []float32, indices []uint32) mesh {
	var m mesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(positions) / 3)
	}

	gl.EnableVertexAttribArray(attrib)
	gl.VertexAttribPointer(attrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindVertexArray(0)
	return m
}

// draw renders one frame for st. The caller presents it.
func (r *renderer) draw(st *viewer.State, aspect float32) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	m := viewer.Frame(st, aspect)

	// World axes, one colour per segment.
	axes := m.AxesMVP()
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, &axes[0])
	gl.BindVertexArray(r.axes.vao)
	for i, c := range axisColours {
		gl.Uniform3fv(r.colorUniform, 1, &c[0])
		gl.DrawArrays(gl.LINES, int32(i*2), 2)
	}

	mvp := m.ModelMVP()
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])
	gl.Uniform3fv(r.colorUniform, 1, &lineColour[0])
	gl.BindVertexArray(r.glyph.vao)
	gl.DrawElements(gl.LINES, r.glyph.count, gl.UNSIGNED_INT, gl.PtrOffset(0))

	gl.BindVertexArray(0)
}

func (r *renderer) delete() {
	for _, m := range []*mesh{&r.glyph, &r.axes} {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	gl.DeleteProgram(r.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
