package glpp

import (
	"fmt"

	"github.com/richinsley/goglpp/driver"
)

// VertexArray is a GL vertex array object configured through the
// separate attribute format and buffer binding calls.
type VertexArray struct {
	object
}

// NewVertexArray creates a vertex array object.
func NewVertexArray(d driver.Driver) *VertexArray {
	return &VertexArray{object: newObject(d, driver.VERTEX_ARRAY, d.CreateVertexArray(), d.DeleteVertexArray)}
}

// Move transfers ownership to a new VertexArray; v is left empty.
func (v *VertexArray) Move() *VertexArray {
	return &VertexArray{object: v.object.move()}
}

// Assign releases v's vertex array and takes ownership of src's.
func (v *VertexArray) Assign(src *VertexArray) {
	if v == src {
		return
	}
	v.object.assign(&src.object)
}

// Bind makes v the current vertex array.
func (v *VertexArray) Bind() {
	v.d.BindVertexArray(v.ID())
}

// BindElementBuffer sets the index buffer used by indexed draws.
func (v *VertexArray) BindElementBuffer(buf *Buffer) {
	v.d.VertexArrayElementBuffer(v.ID(), buf.ID())
}

// BindVertexBuffer attaches buf to a buffer binding point; vertices start
// offset bytes into buf and are stride bytes apart.
func (v *VertexArray) BindVertexBuffer(binding uint32, buf *Buffer, stride int32, offset int) {
	v.d.VertexArrayVertexBuffer(v.ID(), binding, buf.ID(), offset, stride)
}

// BindingDivisor makes attributes fed by binding advance once every divisor
// instances instead of once per vertex.
func (v *VertexArray) BindingDivisor(binding, divisor uint32) {
	v.d.VertexArrayBindingDivisor(v.ID(), binding, divisor)
}

// AttribBinding connects each attribute to binding.
func (v *VertexArray) AttribBinding(binding uint32, attribs ...uint32) {
	for _, a := range attribs {
		v.d.VertexArrayAttribBinding(v.ID(), a, binding)
	}
}

// EnableAttrib enables each attribute.
func (v *VertexArray) EnableAttrib(attribs ...uint32) {
	for _, a := range attribs {
		v.d.EnableVertexArrayAttrib(v.ID(), a)
	}
}

// AttribFormat sets the raw format of an attribute.
func (v *VertexArray) AttribFormat(attrib uint32, size int32, typ uint32, normalized bool, relativeOffset uint32) {
	v.d.VertexArrayAttribFormat(v.ID(), attrib, size, typ, normalized, relativeOffset)
}

// AttribFormatOf sets the format of an attribute from its element type.
func (v *VertexArray) AttribFormatOf(attrib uint32, t AttribType, relativeOffset uint32) error {
	f, err := t.Format()
	if err != nil {
		return fmt.Errorf("attribute %d: %w", attrib, err)
	}
	if f.Integer {
		v.d.VertexArrayAttribIFormat(v.ID(), attrib, f.Size, f.Type, relativeOffset)
		return nil
	}
	v.AttribFormat(attrib, f.Size, f.Type, f.Normalized, relativeOffset)
	return nil
}

// SetLayout connects every attribute of l to binding and sets its format at
// its offset within the vertex. Attributes still need EnableAttrib.
func (v *VertexArray) SetLayout(binding uint32, l VertexLayout) error {
	for _, a := range l.Attribs {
		if _, err := a.Type.Format(); err != nil {
			return fmt.Errorf("attribute %d: %w", a.Index, err)
		}
	}
	v.AttribBinding(binding, l.Indices()...)
	for _, a := range l.Attribs {
		if err := v.AttribFormatOf(a.Index, a.Type, a.Offset); err != nil {
			return err
		}
	}
	return nil
}
