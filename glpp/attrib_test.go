package glpp

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/driver/drivertest"
)

func TestAttribFormat(t *testing.T) {
	tests := []struct {
		typ  AttribType
		want AttribFormat
		size int
	}{
		{AttribFloat, AttribFormat{Size: 1, Type: driver.FLOAT}, 4},
		{AttribVec2, AttribFormat{Size: 2, Type: driver.FLOAT}, 8},
		{AttribVec3, AttribFormat{Size: 3, Type: driver.FLOAT}, 12},
		{AttribVec4, AttribFormat{Size: 4, Type: driver.FLOAT}, 16},
		{AttribUint, AttribFormat{Size: 1, Type: driver.UNSIGNED_INT, Integer: true}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, err := tt.typ.Format()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.size, tt.typ.ByteSize())
		})
	}

	_, err := AttribType(42).Format()
	assert.ErrorIs(t, err, ErrUnsupportedAttrib)
	assert.Zero(t, AttribType(42).ByteSize())
}

func TestPackedLayoutOffsets(t *testing.T) {
	l, err := PackedLayout(AttribVec2, AttribVec3, AttribFloat)
	require.NoError(t, err)
	assert.Equal(t, int32(24), l.Stride)
	assert.Equal(t, []LayoutAttrib{
		{Index: 0, Type: AttribVec2, Offset: 0},
		{Index: 1, Type: AttribVec3, Offset: 8},
		{Index: 2, Type: AttribFloat, Offset: 20},
	}, l.Attribs)

	_, err = PackedLayout(AttribVec2, 0)
	assert.ErrorIs(t, err, ErrUnsupportedAttrib)
}

type packedVertex struct {
	XY    mgl32.Vec2
	RGB   mgl32.Vec3
	Scale float32
}

type texturedVertex struct {
	Pos   [3]float32
	ID    uint32
	Color [4]float32
}

func TestLayoutOfMatchesMemoryLayout(t *testing.T) {
	packed, err := PackedLayout(AttribVec2, AttribVec3, AttribFloat)
	require.NoError(t, err)
	got, err := LayoutOf[packedVertex]()
	require.NoError(t, err)
	assert.Equal(t, packed, got)

	l, err := LayoutOf[texturedVertex]()
	require.NoError(t, err)
	assert.Equal(t, int32(32), l.Stride)
	assert.Equal(t, []uint32{0, 12, 16}, []uint32{l.Attribs[0].Offset, l.Attribs[1].Offset, l.Attribs[2].Offset})
	assert.Equal(t, AttribUint, l.Attribs[1].Type)
}

func TestLayoutOfRejectsUnsupportedFields(t *testing.T) {
	type bad struct {
		Pos mgl32.Vec3
		W   float64
	}
	_, err := LayoutOf[bad]()
	assert.ErrorIs(t, err, ErrUnsupportedAttrib)
	assert.ErrorContains(t, err, "field W")

	_, err = LayoutOf[float32]()
	assert.ErrorIs(t, err, ErrUnsupportedAttrib)
}

func TestLayoutFrom(t *testing.T) {
	l, err := PackedLayout(AttribVec4, AttribVec4)
	require.NoError(t, err)
	shifted := l.From(4)
	assert.Equal(t, []uint32{4, 5}, shifted.Indices())
	assert.Equal(t, []uint32{0, 1}, l.Indices())
}

func TestVertexArraySetLayout(t *testing.T) {
	f := drivertest.New()
	vbo := NewBuffer(f)
	vao := NewVertexArray(f)
	defer vao.Destroy()

	l, err := LayoutOf[texturedVertex]()
	require.NoError(t, err)
	vao.BindVertexBuffer(0, vbo, l.Stride, 0)
	require.NoError(t, vao.SetLayout(0, l.From(1)))
	vao.EnableAttrib(l.From(1).Indices()...)

	fv := f.VertexArrays[vao.ID()]
	assert.Equal(t, &drivertest.VertexBinding{Buffer: vbo.ID(), Stride: 32}, fv.Bindings[0])
	assert.Equal(t, &drivertest.VertexAttrib{Enabled: true, Size: 3, Type: driver.FLOAT}, fv.Attribs[1])
	assert.Equal(t, &drivertest.VertexAttrib{Enabled: true, Size: 1, Type: driver.UNSIGNED_INT, Integer: true, Offset: 12}, fv.Attribs[2])
	assert.Equal(t, &drivertest.VertexAttrib{Enabled: true, Size: 4, Type: driver.FLOAT, Offset: 16}, fv.Attribs[3])
	assert.Empty(t, f.Errors())
}

func TestVertexArrayInstancing(t *testing.T) {
	f := drivertest.New()
	ebo, transforms := NewBuffer(f), NewBuffer(f)
	vao := NewVertexArray(f)

	vao.BindElementBuffer(ebo)
	vao.BindVertexBuffer(0, transforms, 64, 0)
	vao.BindingDivisor(0, 1)
	vao.AttribBinding(0, 0, 1, 2, 3)
	for i := uint32(0); i < 4; i++ {
		require.NoError(t, vao.AttribFormatOf(i, AttribVec4, i*16))
	}
	vao.Bind()

	fv := f.VertexArrays[vao.ID()]
	assert.Equal(t, ebo.ID(), fv.ElementBuffer)
	assert.Equal(t, uint32(1), fv.Bindings[0].Divisor)
	assert.Equal(t, uint32(48), fv.Attribs[3].Offset)
	assert.Equal(t, vao.ID(), f.CurrentVAO)

	assert.ErrorIs(t, vao.AttribFormatOf(5, 0, 0), ErrUnsupportedAttrib)
}
