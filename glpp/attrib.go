package glpp

import (
	"fmt"
	"reflect"

	"github.com/richinsley/goglpp/driver"
)

// AttribType is the element type of one vertex attribute.
type AttribType int

const (
	AttribFloat AttribType = iota + 1
	AttribVec2
	AttribVec3
	AttribVec4
	AttribUint
)

func (t AttribType) String() string {
	switch t {
	case AttribFloat:
		return "float"
	case AttribVec2:
		return "vec2"
	case AttribVec3:
		return "vec3"
	case AttribVec4:
		return "vec4"
	case AttribUint:
		return "uint"
	}
	return fmt.Sprintf("AttribType(%d)", int(t))
}

// AttribFormat is what the driver needs to interpret the bytes of one
// attribute. Integer attributes are set up with glVertexArrayAttribIFormat
// and reach the shader unconverted.
type AttribFormat struct {
	Size       int32
	Type       uint32
	Normalized bool
	Integer    bool
}

var attribFormats = map[AttribType]AttribFormat{
	AttribFloat: {Size: 1, Type: driver.FLOAT},
	AttribVec2:  {Size: 2, Type: driver.FLOAT},
	AttribVec3:  {Size: 3, Type: driver.FLOAT},
	AttribVec4:  {Size: 4, Type: driver.FLOAT},
	AttribUint:  {Size: 1, Type: driver.UNSIGNED_INT, Integer: true},
}

// Format returns the native format of t.
func (t AttribType) Format() (AttribFormat, error) {
	f, ok := attribFormats[t]
	if !ok {
		return AttribFormat{}, fmt.Errorf("%v: %w", t, ErrUnsupportedAttrib)
	}
	return f, nil
}

// ByteSize is the number of bytes one value of t occupies, or 0 for an
// unsupported type. Every component is 4 bytes wide.
func (t AttribType) ByteSize() int {
	f, ok := attribFormats[t]
	if !ok {
		return 0
	}
	return int(f.Size) * 4
}

// LayoutAttrib places one attribute inside a vertex.
type LayoutAttrib struct {
	Index  uint32
	Type   AttribType
	Offset uint32
}

// VertexLayout describes every attribute of an interleaved vertex.
type VertexLayout struct {
	Attribs []LayoutAttrib
	Stride  int32
}

// PackedLayout lays the attributes out back to back in the given order with
// no padding. Attribute i gets index i.
//
// (vec2, vec3, float) gives offsets 0, 8 and 20 and a stride of 24.
func PackedLayout(types ...AttribType) (VertexLayout, error) {
	var l VertexLayout
	var offset uint32
	for i, t := range types {
		if _, err := t.Format(); err != nil {
			return VertexLayout{}, fmt.Errorf("attribute %d: %w", i, err)
		}
		l.Attribs = append(l.Attribs, LayoutAttrib{Index: uint32(i), Type: t, Offset: offset})
		offset += uint32(t.ByteSize())
	}
	l.Stride = int32(offset)
	return l, nil
}

// LayoutOf derives the layout of the vertex struct T from its fields, using
// the offsets the compiler chose. Field i becomes attribute i. Supported
// field types are float32, uint32 and arrays of 2 to 4 float32 such as
// mgl32.Vec3.
func LayoutOf[T any]() (VertexLayout, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return VertexLayout{}, fmt.Errorf("%v is not a struct: %w", rt, ErrUnsupportedAttrib)
	}
	l := VertexLayout{Stride: int32(rt.Size())}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		t, ok := attribTypeOf(f.Type)
		if !ok {
			return VertexLayout{}, fmt.Errorf("field %s of %v has type %v: %w", f.Name, rt, f.Type, ErrUnsupportedAttrib)
		}
		l.Attribs = append(l.Attribs, LayoutAttrib{Index: uint32(i), Type: t, Offset: uint32(f.Offset)})
	}
	return l, nil
}

func attribTypeOf(t reflect.Type) (AttribType, bool) {
	switch t.Kind() {
	case reflect.Float32:
		return AttribFloat, true
	case reflect.Uint32:
		return AttribUint, true
	case reflect.Array:
		if t.Elem().Kind() != reflect.Float32 {
			return 0, false
		}
		switch t.Len() {
		case 2:
			return AttribVec2, true
		case 3:
			return AttribVec3, true
		case 4:
			return AttribVec4, true
		}
	}
	return 0, false
}

// From returns a copy of l with attribute indices starting at base.
func (l VertexLayout) From(base uint32) VertexLayout {
	out := VertexLayout{Stride: l.Stride, Attribs: make([]LayoutAttrib, len(l.Attribs))}
	for i, a := range l.Attribs {
		a.Index += base
		out.Attribs[i] = a
	}
	return out
}

// Indices lists the attribute indices of l in order.
func (l VertexLayout) Indices() []uint32 {
	idx := make([]uint32, len(l.Attribs))
	for i, a := range l.Attribs {
		idx[i] = a.Index
	}
	return idx
}
