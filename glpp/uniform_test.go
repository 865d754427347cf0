package glpp

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goglpp/driver/drivertest"
)

const uniformShader = `#version 450
uniform int count;
uniform uint mask;
uniform float dt;
uniform vec2 offset;
uniform vec3 lightDir;
uniform vec4 tint;
uniform mat2 rot2;
uniform mat3 normalMat;
uniform mat4 model;
uniform float weights[3];
uniform vec3 lights[2];
uniform vec4 colors[2];
uniform mat4 bones[2];
void main() {
    float x = float(count) + float(mask) + dt + offset.x + lightDir.x + tint.x;
    x += rot2[0].x + normalMat[0].x + model[0].x + weights[0];
    x += lights[0].x + colors[0].x + bones[0][0].x;
}
`

func uniformProgram(t *testing.T) (*drivertest.Fake, *Program) {
	t.Helper()
	f := drivertest.New()
	cs := mustCompile(t, f, ComputeShader, uniformShader)
	p, err := LinkProgram(f, cs)
	require.NoError(t, err)
	return f, p
}

func TestUniformUploads(t *testing.T) {
	f, p := uniformProgram(t)
	id := p.ID()

	model := mgl32.Translate3D(1, 2, 3)
	normal := mgl32.Ident3()
	tests := []struct {
		name string
		v    any
		want any
	}{
		{"count", 3, int32(3)},
		{"count", int32(-4), int32(-4)},
		{"mask", uint32(0xff), uint32(0xff)},
		{"dt", float32(0.5), float32(0.5)},
		{"offset", mgl32.Vec2{1, 2}, []float32{1, 2}},
		{"lightDir", mgl32.Vec3{1, 2, 3}, []float32{1, 2, 3}},
		{"tint", mgl32.Vec4{1, 2, 3, 4}, []float32{1, 2, 3, 4}},
		{"rot2", mgl32.Ident2(), []float32{1, 0, 0, 1}},
		{"normalMat", normal, normal[:]},
		{"model", model, model[:]},
		{"weights[0]", []float32{1, 2, 3}, []float32{1, 2, 3}},
		{"lights[0]", []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}}, []float32{1, 2, 3, 4, 5, 6}},
		{"colors[0]", []mgl32.Vec4{{1, 2, 3, 4}}, []float32{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		require.NoError(t, p.Uniform(tt.name, tt.v), tt.name)
		assert.Equal(t, tt.want, f.UniformValue(id, tt.name), tt.name)
	}

	bones := []mgl32.Mat4{mgl32.Ident4(), model}
	require.NoError(t, SetUniform(p, "bones[0]", bones))
	got, ok := f.UniformValue(id, "bones[0]").([]float32)
	require.True(t, ok)
	assert.Len(t, got, 32)
	assert.Equal(t, model[:], got[16:])
	assert.Empty(t, f.Errors())
}

func TestUniformRejectsUnsupportedTypes(t *testing.T) {
	f, p := uniformProgram(t)
	for _, v := range []any{float64(0.5), int64(1), true, "x", [3]float64{}, mgl32.Mat3x4{}} {
		err := p.Uniform("dt", v)
		assert.ErrorIs(t, err, ErrUnsupportedType, "%T", v)
	}
	assert.Nil(t, f.UniformValue(p.ID(), "dt"))
}

func TestUniformUnknownName(t *testing.T) {
	f, p := uniformProgram(t)
	err := SetUniform(p, "DT", float32(1))
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Empty(t, f.Programs[p.ID()].Values)
}

func TestUniformEmptySliceIsNoop(t *testing.T) {
	f, p := uniformProgram(t)
	require.NoError(t, SetUniform(p, "weights[0]", []float32{}))
	assert.Nil(t, f.UniformValue(p.ID(), "weights[0]"))
}
