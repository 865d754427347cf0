// Package driver describes the subset of the OpenGL 4.5 core API that the
// glpp object wrappers call into.
//
// Every method is a direct call-through to the native function of the same
// name. Implementations must be used from the goroutine that owns the
// current GL context, which in practice means an OS-thread-locked main
// goroutine.
package driver

// Driver is the native graphics API surface.
type Driver interface {
	// Buffers
	CreateBuffer() uint32
	DeleteBuffer(id uint32)
	NamedBufferStorage(id uint32, size int, data []byte, flags uint32)
	NamedBufferSubData(id uint32, offset int, data []byte)
	CopyNamedBufferSubData(src, dst uint32, readOffset, writeOffset, size int)
	MapNamedBufferRange(id uint32, offset, length int, access uint32) []byte
	UnmapNamedBuffer(id uint32) bool
	BindBuffer(target, id uint32)
	BindBufferBase(target, index, id uint32)

	// Vertex arrays
	CreateVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	VertexArrayElementBuffer(vao, buffer uint32)
	VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32)
	VertexArrayAttribBinding(vao, attrib, binding uint32)
	VertexArrayBindingDivisor(vao, binding, divisor uint32)
	EnableVertexArrayAttrib(vao, attrib uint32)
	VertexArrayAttribFormat(vao, attrib uint32, size int32, typ uint32, normalized bool, relativeOffset uint32)
	VertexArrayAttribIFormat(vao, attrib uint32, size int32, typ uint32, relativeOffset uint32)

	// Shaders
	CreateShader(stage uint32) uint32
	DeleteShader(id uint32)
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	GetShaderiv(id, pname uint32) int32
	GetShaderInfoLog(id uint32) string

	// Programs
	CreateProgram() uint32
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(id uint32)
	GetProgramiv(id, pname uint32) int32
	GetProgramInfoLog(id uint32) string
	GetActiveUniform(program, index uint32, bufSize int32) (name string, size int32, typ uint32)
	GetActiveAttrib(program, index uint32, bufSize int32) (name string, size int32, typ uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	// Program-scoped uniform uploads
	ProgramUniform1i(program uint32, location, v int32)
	ProgramUniform1ui(program uint32, location int32, v uint32)
	ProgramUniform1f(program uint32, location int32, v float32)
	ProgramUniform1fv(program uint32, location int32, v []float32)
	ProgramUniform2fv(program uint32, location int32, v []float32)
	ProgramUniform3fv(program uint32, location int32, v []float32)
	ProgramUniform4fv(program uint32, location int32, v []float32)
	ProgramUniformMatrix2fv(program uint32, location int32, v []float32)
	ProgramUniformMatrix3fv(program uint32, location int32, v []float32)
	ProgramUniformMatrix4fv(program uint32, location int32, v []float32)

	// Textures
	CreateTexture(target uint32) uint32
	DeleteTexture(id uint32)
	BindTexture(target, id uint32)
	BindTextureUnit(unit, id uint32)
	GenerateTextureMipmap(id uint32)
	TextureParameteri(id, pname uint32, param int32)
	TextureStorage1D(id uint32, levels int32, internalFormat uint32, width int32)
	TextureStorage2D(id uint32, levels int32, internalFormat uint32, width, height int32)
	TextureSubImage1D(id uint32, level, xoffset, width int32, format, typ uint32, pixels []byte)
	TextureSubImage2D(id uint32, level, xoffset, yoffset, width, height int32, format, typ uint32, pixels []byte)
	TextureSubImage3D(id uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ uint32, pixels []byte)

	// Debugging
	ObjectLabel(namespace, id uint32, label string)
	GetError() uint32

	// Draw, dispatch and framebuffer state
	Enable(capability uint32)
	Disable(capability uint32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, typ uint32, offset int)
	DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instances int32)
	DispatchCompute(x, y, z uint32)
	MemoryBarrier(barriers uint32)
	ReadPixels(x, y, width, height int32, format, typ uint32, dst []byte)
}
