package drivertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goglpp/driver"
)

const vertexSrc = `#version 450
layout(location = 0) in vec2 xy;
in vec3 rgb;
in float unused;
uniform mat4 MVP;
uniform float scales[3];
out vec3 color;
void main() {
    gl_Position = MVP * vec4(xy * scales[1], 0.0, 1.0);
    color = rgb;
}
`

const fragmentSrc = `#version 450
in vec3 color;
out vec4 fragColor;
void main() {
    fragColor = vec4(color, 1.0);
}
`

func compile(t *testing.T, f *Fake, stage uint32, src string) uint32 {
	t.Helper()
	id := f.CreateShader(stage)
	f.ShaderSource(id, src)
	f.CompileShader(id)
	return id
}

func linkProgram(t *testing.T, f *Fake, shaders ...uint32) uint32 {
	t.Helper()
	p := f.CreateProgram()
	for _, s := range shaders {
		f.AttachShader(p, s)
	}
	f.LinkProgram(p)
	return p
}

func TestIdentifiersArePerClass(t *testing.T) {
	f := New()
	assert.Equal(t, uint32(1), f.CreateBuffer())
	assert.Equal(t, uint32(2), f.CreateBuffer())
	assert.Equal(t, uint32(1), f.CreateTexture(driver.TEXTURE_2D))
	assert.Equal(t, uint32(1), f.CreateVertexArray())
	assert.Equal(t, uint32(0), f.CreateTexture(0x1234))
	assert.Equal(t, []uint32{driver.INVALID_ENUM}, f.Errors())
}

func TestBufferStorage(t *testing.T) {
	f := New()
	id := f.CreateBuffer()
	f.NamedBufferStorage(id, 4, []byte{1, 2, 3, 4}, driver.DYNAMIC_STORAGE_BIT)
	f.NamedBufferSubData(id, 2, []byte{9, 9})
	assert.Equal(t, []byte{1, 2, 9, 9}, f.Buffers[id].Data)

	f.NamedBufferSubData(id, 3, []byte{1, 1})
	f.NamedBufferStorage(id, 8, nil, 0)
	assert.Equal(t, []uint32{driver.INVALID_VALUE, driver.INVALID_OPERATION}, f.Errors())
	assert.Equal(t, uint32(driver.NO_ERROR), f.GetError())

	f.DeleteBuffer(id)
	assert.Equal(t, 1, f.DeleteCount(KindBuffer, id))
	assert.Equal(t, 0, f.Live(KindBuffer))
}

func TestCompileFailures(t *testing.T) {
	f := New()
	for name, src := range map[string]string{
		"no version": "void main() {}\n",
		"unbalanced": "#version 450\nvoid main() {\n",
		"no main":    "#version 450\nuniform float x;\n",
		"error":      "#version 450\n#error broken\nvoid main() {}\n",
	} {
		t.Run(name, func(t *testing.T) {
			id := compile(t, f, driver.FRAGMENT_SHADER, src)
			assert.Equal(t, int32(driver.FALSE), f.GetShaderiv(id, driver.COMPILE_STATUS))
			assert.Positive(t, f.GetShaderiv(id, driver.INFO_LOG_LENGTH))
			assert.Contains(t, f.GetShaderInfoLog(id), "error:")
		})
	}
}

func TestLinkReportsActiveVariables(t *testing.T) {
	f := New()
	vs := compile(t, f, driver.VERTEX_SHADER, vertexSrc)
	fs := compile(t, f, driver.FRAGMENT_SHADER, fragmentSrc)
	p := linkProgram(t, f, vs, fs)
	require.Equal(t, int32(driver.TRUE), f.GetProgramiv(p, driver.LINK_STATUS), f.GetProgramInfoLog(p))

	assert.Equal(t, int32(2), f.GetProgramiv(p, driver.ACTIVE_UNIFORMS))
	assert.Equal(t, int32(len("scales[0]")+1), f.GetProgramiv(p, driver.ACTIVE_UNIFORM_MAX_LENGTH))
	name, size, typ := f.GetActiveUniform(p, 1, 64)
	assert.Equal(t, "scales[0]", name)
	assert.Equal(t, int32(3), size)
	assert.Equal(t, uint32(driver.FLOAT), typ)

	assert.Equal(t, int32(2), f.GetProgramiv(p, driver.ACTIVE_ATTRIBUTES))
	assert.Equal(t, int32(0), f.GetAttribLocation(p, "xy"))
	assert.Equal(t, int32(1), f.GetAttribLocation(p, "rgb"))
	assert.Equal(t, int32(-1), f.GetAttribLocation(p, "unused"))

	assert.Equal(t, int32(0), f.GetUniformLocation(p, "MVP"))
	assert.Equal(t, int32(1), f.GetUniformLocation(p, "scales"))
	assert.Equal(t, int32(3), f.GetUniformLocation(p, "scales[2]"))
	assert.Equal(t, int32(-1), f.GetUniformLocation(p, "scales[3]"))
}

func TestLinkInterfaceMismatch(t *testing.T) {
	f := New()
	vs := compile(t, f, driver.VERTEX_SHADER, `#version 450
out vec2 color;
void main() { color = vec2(0); gl_Position = vec4(color, 0, 1); }
`)
	fs := compile(t, f, driver.FRAGMENT_SHADER, fragmentSrc)
	p := linkProgram(t, f, vs, fs)
	assert.Equal(t, int32(driver.FALSE), f.GetProgramiv(p, driver.LINK_STATUS))
	assert.Contains(t, f.GetProgramInfoLog(p), "`color'")
	assert.Zero(t, f.GetProgramiv(p, driver.ACTIVE_UNIFORMS))
}

func TestShaderDeletionIsDeferredWhileAttached(t *testing.T) {
	f := New()
	vs := compile(t, f, driver.VERTEX_SHADER, vertexSrc)
	p := f.CreateProgram()
	f.AttachShader(p, vs)
	f.DeleteShader(vs)
	assert.Equal(t, int32(driver.TRUE), f.GetShaderiv(vs, driver.DELETE_STATUS))
	f.DetachShader(p, vs)
	assert.Equal(t, 0, f.Live(KindShader))
	assert.Empty(t, f.Shaders)
}

func TestUniformUploadsIgnoreMinusOne(t *testing.T) {
	f := New()
	p := linkProgram(t, f,
		compile(t, f, driver.VERTEX_SHADER, vertexSrc),
		compile(t, f, driver.FRAGMENT_SHADER, fragmentSrc))
	f.ProgramUniform1fv(p, -1, []float32{1})
	f.ProgramUniform1fv(p, f.GetUniformLocation(p, "scales"), []float32{1, 2, 3})
	assert.Equal(t, []float32{1, 2, 3}, f.UniformValue(p, "scales"))
	assert.Empty(t, f.Errors())
}

func TestTextureUploadBounds(t *testing.T) {
	f := New()
	id := f.CreateTexture(driver.TEXTURE_CUBE_MAP)
	f.TextureStorage2D(id, 1, driver.RGBA8, 4, 4)
	f.TextureSubImage3D(id, 0, 0, 0, 5, 4, 4, 1, driver.RGBA, driver.UNSIGNED_BYTE, make([]byte, 64))
	f.TextureSubImage3D(id, 0, 0, 0, 6, 4, 4, 1, driver.RGBA, driver.UNSIGNED_BYTE, make([]byte, 64))
	assert.Len(t, f.Textures[id].Uploads, 1)
	assert.Equal(t, []uint32{driver.INVALID_VALUE}, f.Errors())
}

func TestReadPixelsUsesClearColor(t *testing.T) {
	f := New()
	f.ClearColor(1, 0, 0, 1)
	dst := make([]byte, 8)
	f.ReadPixels(0, 0, 2, 1, driver.RGBA, driver.UNSIGNED_BYTE, dst)
	assert.Equal(t, []byte{255, 0, 0, 255, 255, 0, 0, 255}, dst)
}
