// Package gl45 implements driver.Driver on top of the go-gl OpenGL 4.5 core
// bindings, using direct state access entry points throughout.
package gl45

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	gl "github.com/go-gl/gl/v4.5-core/gl"
	"github.com/richinsley/goglpp/driver"
)

// glInit is replaced in tests.
var glInit = gl.Init

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Driver calls straight into the GL function pointers loaded by gl.Init.
type Driver struct{}

var _ driver.Driver = (*Driver)(nil)

// New loads the GL entry points for the context that is current on the
// calling thread.
func New() (*Driver, error) {
	glInitOnce.Do(func() {
		glInitErr = glInit()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	return &Driver{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (*Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// ── Buffers ──

func (*Driver) CreateBuffer() uint32 {
	var id uint32
	gl.CreateBuffers(1, &id)
	return id
}

func (*Driver) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (*Driver) NamedBufferStorage(id uint32, size int, data []byte, flags uint32) {
	gl.NamedBufferStorage(id, size, ptr(data), flags)
}

func (*Driver) NamedBufferSubData(id uint32, offset int, data []byte) {
	gl.NamedBufferSubData(id, offset, len(data), ptr(data))
}

func (*Driver) CopyNamedBufferSubData(src, dst uint32, readOffset, writeOffset, size int) {
	gl.CopyNamedBufferSubData(src, dst, readOffset, writeOffset, size)
}

func (*Driver) MapNamedBufferRange(id uint32, offset, length int, access uint32) []byte {
	p := gl.MapNamedBufferRange(id, offset, length, access)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (*Driver) UnmapNamedBuffer(id uint32) bool { return gl.UnmapNamedBuffer(id) }

func (*Driver) BindBuffer(target, id uint32) { gl.BindBuffer(target, id) }

func (*Driver) BindBufferBase(target, index, id uint32) { gl.BindBufferBase(target, index, id) }

// ── Vertex arrays ──

func (*Driver) CreateVertexArray() uint32 {
	var id uint32
	gl.CreateVertexArrays(1, &id)
	return id
}

func (*Driver) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (*Driver) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (*Driver) VertexArrayElementBuffer(vao, buffer uint32) {
	gl.VertexArrayElementBuffer(vao, buffer)
}

func (*Driver) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(vao, binding, buffer, offset, stride)
}

func (*Driver) VertexArrayAttribBinding(vao, attrib, binding uint32) {
	gl.VertexArrayAttribBinding(vao, attrib, binding)
}

func (*Driver) VertexArrayBindingDivisor(vao, binding, divisor uint32) {
	gl.VertexArrayBindingDivisor(vao, binding, divisor)
}

func (*Driver) EnableVertexArrayAttrib(vao, attrib uint32) {
	gl.EnableVertexArrayAttrib(vao, attrib)
}

func (*Driver) VertexArrayAttribFormat(vao, attrib uint32, size int32, typ uint32, normalized bool, relativeOffset uint32) {
	gl.VertexArrayAttribFormat(vao, attrib, size, typ, normalized, relativeOffset)
}

func (*Driver) VertexArrayAttribIFormat(vao, attrib uint32, size int32, typ uint32, relativeOffset uint32) {
	gl.VertexArrayAttribIFormat(vao, attrib, size, typ, relativeOffset)
}

// ── Shaders ──

func (*Driver) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (*Driver) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (*Driver) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (*Driver) CompileShader(id uint32) { gl.CompileShader(id) }

func (*Driver) GetShaderiv(id, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(id, pname, &v)
	return v
}

func (d *Driver) GetShaderInfoLog(id uint32) string {
	logLength := d.GetShaderiv(id, gl.INFO_LOG_LENGTH)
	if logLength <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

// ── Programs ──

func (*Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Driver) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (*Driver) UseProgram(id uint32) { gl.UseProgram(id) }

func (*Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Driver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (*Driver) LinkProgram(id uint32) { gl.LinkProgram(id) }

func (*Driver) GetProgramiv(id, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(id, pname, &v)
	return v
}

func (d *Driver) GetProgramInfoLog(id uint32) string {
	logLength := d.GetProgramiv(id, gl.INFO_LOG_LENGTH)
	if logLength <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

type activeQuery func(program, index uint32, bufSize int32, length *int32, size *int32, xtype *uint32, name *uint8)

func getActive(query activeQuery, program, index uint32, bufSize int32) (string, int32, uint32) {
	if bufSize <= 0 {
		bufSize = 1
	}
	buf := make([]uint8, bufSize)
	var length, size int32
	var typ uint32
	query(program, index, bufSize, &length, &size, &typ, &buf[0])
	return string(buf[:length]), size, typ
}

func (*Driver) GetActiveUniform(program, index uint32, bufSize int32) (string, int32, uint32) {
	return getActive(gl.GetActiveUniform, program, index, bufSize)
}

func (*Driver) GetActiveAttrib(program, index uint32, bufSize int32) (string, int32, uint32) {
	return getActive(gl.GetActiveAttrib, program, index, bufSize)
}

func (*Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// ── Uniforms ──

func (*Driver) ProgramUniform1i(program uint32, location, v int32) {
	gl.ProgramUniform1i(program, location, v)
}

func (*Driver) ProgramUniform1ui(program uint32, location int32, v uint32) {
	gl.ProgramUniform1ui(program, location, v)
}

func (*Driver) ProgramUniform1f(program uint32, location int32, v float32) {
	gl.ProgramUniform1f(program, location, v)
}

func (*Driver) ProgramUniform1fv(program uint32, location int32, v []float32) {
	gl.ProgramUniform1fv(program, location, int32(len(v)), &v[0])
}

func (*Driver) ProgramUniform2fv(program uint32, location int32, v []float32) {
	gl.ProgramUniform2fv(program, location, int32(len(v)/2), &v[0])
}

func (*Driver) ProgramUniform3fv(program uint32, location int32, v []float32) {
	gl.ProgramUniform3fv(program, location, int32(len(v)/3), &v[0])
}

func (*Driver) ProgramUniform4fv(program uint32, location int32, v []float32) {
	gl.ProgramUniform4fv(program, location, int32(len(v)/4), &v[0])
}

func (*Driver) ProgramUniformMatrix2fv(program uint32, location int32, v []float32) {
	gl.ProgramUniformMatrix2fv(program, location, int32(len(v)/4), false, &v[0])
}

func (*Driver) ProgramUniformMatrix3fv(program uint32, location int32, v []float32) {
	gl.ProgramUniformMatrix3fv(program, location, int32(len(v)/9), false, &v[0])
}

func (*Driver) ProgramUniformMatrix4fv(program uint32, location int32, v []float32) {
	gl.ProgramUniformMatrix4fv(program, location, int32(len(v)/16), false, &v[0])
}

// ── Textures ──

func (*Driver) CreateTexture(target uint32) uint32 {
	var id uint32
	gl.CreateTextures(target, 1, &id)
	return id
}

func (*Driver) DeleteTexture(id uint32) { gl.DeleteTextures(1, &id) }

func (*Driver) BindTexture(target, id uint32) { gl.BindTexture(target, id) }

func (*Driver) BindTextureUnit(unit, id uint32) { gl.BindTextureUnit(unit, id) }

func (*Driver) GenerateTextureMipmap(id uint32) { gl.GenerateTextureMipmap(id) }

func (*Driver) TextureParameteri(id, pname uint32, param int32) {
	gl.TextureParameteri(id, pname, param)
}

func (*Driver) TextureStorage1D(id uint32, levels int32, internalFormat uint32, width int32) {
	gl.TextureStorage1D(id, levels, internalFormat, width)
}

func (*Driver) TextureStorage2D(id uint32, levels int32, internalFormat uint32, width, height int32) {
	gl.TextureStorage2D(id, levels, internalFormat, width, height)
}

func (*Driver) TextureSubImage1D(id uint32, level, xoffset, width int32, format, typ uint32, pixels []byte) {
	gl.TextureSubImage1D(id, level, xoffset, width, format, typ, ptr(pixels))
}

func (*Driver) TextureSubImage2D(id uint32, level, xoffset, yoffset, width, height int32, format, typ uint32, pixels []byte) {
	gl.TextureSubImage2D(id, level, xoffset, yoffset, width, height, format, typ, ptr(pixels))
}

func (*Driver) TextureSubImage3D(id uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ uint32, pixels []byte) {
	gl.TextureSubImage3D(id, level, xoffset, yoffset, zoffset, width, height, depth, format, typ, ptr(pixels))
}

// ── Debugging ──

func (*Driver) ObjectLabel(namespace, id uint32, label string) {
	if label == "" {
		return
	}
	bytes := []byte(label)
	gl.ObjectLabel(namespace, id, int32(len(bytes)), (*uint8)(unsafe.Pointer(&bytes[0])))
}

func (*Driver) GetError() uint32 { return gl.GetError() }

// ── Draw and dispatch ──

func (*Driver) Enable(capability uint32) { gl.Enable(capability) }

func (*Driver) Disable(capability uint32) { gl.Disable(capability) }

func (*Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (*Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Driver) Clear(mask uint32) { gl.Clear(mask) }

func (*Driver) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (*Driver) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	gl.DrawElements(mode, count, typ, gl.PtrOffset(offset))
}

func (*Driver) DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instances int32) {
	gl.DrawElementsInstanced(mode, count, typ, gl.PtrOffset(offset), instances)
}

func (*Driver) DispatchCompute(x, y, z uint32) { gl.DispatchCompute(x, y, z) }

func (*Driver) MemoryBarrier(barriers uint32) { gl.MemoryBarrier(barriers) }

func (*Driver) ReadPixels(x, y, width, height int32, format, typ uint32, dst []byte) {
	gl.ReadPixels(x, y, width, height, format, typ, ptr(dst))
}
