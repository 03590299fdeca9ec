package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is a VAO over one interleaved float buffer and an optional
// element buffer.
type VertexArray struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	// indexed draws use DrawElements over count indices
	indexed bool
}

// NewVertexArray uploads interleaved float data. layout lists the component
// count of each attribute in location order, e.g. {3, 3, 2} for position,
// normal, texture coordinate.
func NewVertexArray(data []float32, layout []int32, indices []uint32) *VertexArray {
	var stride int32
	for _, n := range layout {
		stride += n
	}

	va := &VertexArray{}
	if len(indices) > 0 {
		va.indexed = true
		va.count = int32(len(indices))
	} else if stride > 0 {
		va.count = int32(len(data)) / stride
	}

	gl.GenVertexArrays(1, &va.vao)
	gl.GenBuffers(1, &va.vbo)
	gl.BindVertexArray(va.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	if va.indexed {
		gl.GenBuffers(1, &va.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	var offset int32
	for loc, n := range layout {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), n, gl.FLOAT, false, stride*4, gl.PtrOffset(int(offset*4)))
		offset += n
	}

	gl.BindVertexArray(0)
	return va
}

// Draw issues one triangle draw over the whole array.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.vao)
	if va.indexed {
		gl.DrawElements(gl.TRIANGLES, va.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, va.count)
	}
	gl.BindVertexArray(0)
}

// Destroy frees the GL buffers.
func (va *VertexArray) Destroy() {
	gl.DeleteVertexArrays(1, &va.vao)
	gl.DeleteBuffers(1, &va.vbo)
	if va.indexed {
		gl.DeleteBuffers(1, &va.ebo)
	}
}
