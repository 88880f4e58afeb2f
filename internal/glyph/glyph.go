// Package glyph builds the static wireframe of the letter K.
package glyph

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Segment is a pair of indices into Glyph.Vertices.
type Segment [2]uint32

// Glyph is a wireframe: shared vertices and the lines between them.
type Glyph struct {
	Vertices []mgl32.Vec3
	Segments []Segment
}

// Edges of a prism whose vertices are ordered front quad then back quad.
var prismEdges = [12]Segment{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // Front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // Back face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Connecting lines
}

// Prism extrudes the quad front by depth along +Z.
func Prism(front [4]mgl32.Vec3, depth float32) Glyph {
	g := Glyph{
		Vertices: make([]mgl32.Vec3, 0, 8),
		Segments: make([]Segment, 0, len(prismEdges)),
	}
	g.Vertices = append(g.Vertices, front[:]...)
	for _, v := range front {
		g.Vertices = append(g.Vertices, mgl32.Vec3{v[0], v[1], v[2] + depth})
	}
	g.Segments = append(g.Segments, prismEdges[:]...)
	return g
}

// Box returns an axis-aligned box with its minimum corner at origin.
func Box(origin, size mgl32.Vec3) Glyph {
	x, y, z := origin.Elem()
	w, h, d := size.Elem()
	return Prism([4]mgl32.Vec3{
		{x, y, z},
		{x + w, y, z},
		{x + w, y + h, z},
		{x, y + h, z},
	}, d)
}

// Append adds part to g, shifting its indices past g's vertices.
func (g *Glyph) Append(part Glyph) {
	offset := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, part.Vertices...)
	for _, s := range part.Segments {
		g.Segments = append(g.Segments, Segment{s[0] + offset, s[1] + offset})
	}
}

// Build returns the letter K: a vertical bar and two slanted legs.
func Build() Glyph {
	const depth = 1.0

	var k Glyph
	k.Append(Box(mgl32.Vec3{-2, -3, -0.5}, mgl32.Vec3{1, 6, depth}))

	// Upper leg, from the middle of the bar up and to the right.
	k.Append(Prism([4]mgl32.Vec3{
		{-1, 0, -0.5}, {0, 0, -0.5},
		{2, 3, -0.5}, {1, 3, -0.5},
	}, depth))

	// Lower leg.
	k.Append(Prism([4]mgl32.Vec3{
		{-1, 0, -0.5}, {0, 0, -0.5},
		{2, -3, -0.5}, {1, -3, -0.5},
	}, depth))

	return k
}

// Positions flattens the vertices into x, y, z triples for a vertex buffer.
func (g Glyph) Positions() []float32 {
	out := make([]float32, 0, len(g.Vertices)*3)
	for _, v := range g.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Indices flattens the segments into an index buffer for GL_LINES.
func (g Glyph) Indices() []uint32 {
	out := make([]uint32, 0, len(g.Segments)*2)
	for _, s := range g.Segments {
		out = append(out, s[0], s[1])
	}
	return out
}

// Validate reports the first segment that references a missing vertex.
func (g Glyph) Validate() error {
	n := uint32(len(g.Vertices))
	for i, s := range g.Segments {
		if s[0] >= n || s[1] >= n {
			return fmt.Errorf("segment %d (%d, %d) out of range of %d vertices", i, s[0], s[1], n)
		}
	}
	return nil
}
