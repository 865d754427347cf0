package glpp

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformValue is the closed set of Go types a uniform can be set from.
// int and int32 upload a GLSL int (also used for sampler units), uint32 a
// uint, float32 a float, the mgl32 vectors and matrices their GLSL
// counterparts, and the slices upload arrays starting at the named element.
type UniformValue interface {
	int | int32 | uint32 | float32 |
		mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 |
		mgl32.Mat2 | mgl32.Mat3 | mgl32.Mat4 |
		[]float32 | []mgl32.Vec3 | []mgl32.Vec4 | []mgl32.Mat4
}

// SetUniform is the compile-time checked form of Program.Uniform.
func SetUniform[T UniformValue](p *Program, name string, v T) error {
	return p.Uniform(name, v)
}

// Uniform uploads v to the named uniform with the driver call matching v's
// type. Values are never converted between types: a float64 or an int64 is
// rejected with ErrUnsupportedType rather than narrowed. The program does
// not have to be in use.
func (p *Program) Uniform(name string, v any) error {
	loc, err := p.UniformLoc(name)
	if err != nil {
		return err
	}
	id := p.ID()
	switch v := v.(type) {
	case int:
		p.d.ProgramUniform1i(id, loc, int32(v))
	case int32:
		p.d.ProgramUniform1i(id, loc, v)
	case uint32:
		p.d.ProgramUniform1ui(id, loc, v)
	case float32:
		p.d.ProgramUniform1f(id, loc, v)
	case mgl32.Vec2:
		p.d.ProgramUniform2fv(id, loc, v[:])
	case mgl32.Vec3:
		p.d.ProgramUniform3fv(id, loc, v[:])
	case mgl32.Vec4:
		p.d.ProgramUniform4fv(id, loc, v[:])
	case mgl32.Mat2:
		p.d.ProgramUniformMatrix2fv(id, loc, v[:])
	case mgl32.Mat3:
		p.d.ProgramUniformMatrix3fv(id, loc, v[:])
	case mgl32.Mat4:
		p.d.ProgramUniformMatrix4fv(id, loc, v[:])
	case []float32:
		if len(v) > 0 {
			p.d.ProgramUniform1fv(id, loc, v)
		}
	case []mgl32.Vec3:
		if len(v) > 0 {
			p.d.ProgramUniform3fv(id, loc, flatten(v))
		}
	case []mgl32.Vec4:
		if len(v) > 0 {
			p.d.ProgramUniform4fv(id, loc, flatten(v))
		}
	case []mgl32.Mat4:
		if len(v) > 0 {
			p.d.ProgramUniformMatrix4fv(id, loc, flatten(v))
		}
	default:
		return fmt.Errorf("uniform %q: %T: %w", name, v, ErrUnsupportedType)
	}
	return nil
}

// flatten views a slice of float32 arrays as one float32 slice.
func flatten[T mgl32.Vec3 | mgl32.Vec4 | mgl32.Mat4](s []T) []float32 {
	var zero T
	n := len(s) * int(unsafe.Sizeof(zero)) / 4
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(s))), n)
}
