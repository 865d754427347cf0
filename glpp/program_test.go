package glpp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/driver/drivertest"
)

const testVertexShader = `#version 450
layout(location = 0) in vec2 vPos;
layout(location = 1) in vec3 vCol;
in float vUnused;
uniform mat4 MVP;
uniform float unusedScale;
out vec3 color;
void main() {
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
    color = vCol;
}
`

const testFragmentShader = `#version 450
in vec3 color;
uniform float alpha;
uniform vec4 tints[2];
out vec4 fragColor;
void main() {
    fragColor = vec4(color, alpha) * tints[0];
}
`

// A fragment stage whose input does not match the vertex output above.
const mismatchedFragmentShader = `#version 450
in vec4 color;
out vec4 fragColor;
void main() {
    fragColor = color;
}
`

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func mustCompile(t *testing.T, d driver.Driver, stage ShaderStage, src string) *Shader {
	t.Helper()
	s, err := CompileShader(d, stage, src)
	require.NoError(t, err)
	return s
}

func mustLink(t *testing.T, d driver.Driver) *Program {
	t.Helper()
	vs := mustCompile(t, d, VertexShader, testVertexShader)
	defer vs.Destroy()
	fs := mustCompile(t, d, FragmentShader, testFragmentShader)
	defer fs.Destroy()
	p, err := LinkProgram(d, vs, fs)
	require.NoError(t, err)
	return p
}

func TestCompileShader(t *testing.T) {
	f := drivertest.New()
	s := mustCompile(t, f, VertexShader, testVertexShader)
	assert.True(t, s.Compiled())
	assert.Equal(t, VertexShader, s.Stage())
	assert.Equal(t, uint32(driver.VERTEX_SHADER), f.Shaders[s.ID()].Stage)
}

func TestCompileFailureReleasesShader(t *testing.T) {
	logs := observeLogs(t)
	f := drivertest.New()

	s, err := CompileShader(f, FragmentShader, "#version 450\nvoid main() {\n")
	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrCompile)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, FragmentShader, ce.Stage)
	assert.Contains(t, ce.Log, "unexpected end of file")
	assert.Contains(t, err.Error(), "failed to compile fragment shader")

	assert.Equal(t, 1, f.DeleteCount(drivertest.KindShader, 1))
	assert.Zero(t, f.Live(drivertest.KindShader))

	entries := logs.FilterMessage("shader compilation log").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestCompileWarningsAreLogged(t *testing.T) {
	logs := observeLogs(t)
	f := drivertest.New()
	s := mustCompile(t, f, FragmentShader, "#version 110\nvoid main() {\n    gl_FragColor = vec4(1.0);\n}\n")
	defer s.Destroy()

	entries := logs.FilterMessage("shader compilation log").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["log"], "deprecated")
	assert.Equal(t, "fragment", entries[0].ContextMap()["stage"])
}

func TestShaderFromFile(t *testing.T) {
	f := drivertest.New()
	path := filepath.Join(t.TempDir(), "tri.vert")
	require.NoError(t, os.WriteFile(path, []byte(testVertexShader), 0o644))

	s, err := ShaderFromFile(f, VertexShader, path)
	require.NoError(t, err)
	assert.Equal(t, testVertexShader, f.Shaders[s.ID()].Source)

	_, err = ShaderFromFile(f, VertexShader, filepath.Join(t.TempDir(), "missing.vert"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNameMapsMatchActiveVariables(t *testing.T) {
	f := drivertest.New()
	p := mustLink(t, f)
	defer p.Destroy()

	assert.True(t, p.Linked())
	assert.Equal(t, []string{"MVP", "alpha", "tints[0]"}, p.UniformNames())
	assert.Equal(t, []string{"vCol", "vPos"}, p.AttribNames())

	fp := f.Programs[p.ID()]
	var reported []string
	for _, u := range fp.Uniforms {
		reported = append(reported, u.Name)
	}
	assert.ElementsMatch(t, reported, p.UniformNames())

	locs, err := p.AttribLocs("vPos", "vCol")
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, locs)

	loc, err := p.UniformLoc("tints[0]")
	require.NoError(t, err)
	assert.Equal(t, f.GetUniformLocation(p.ID(), "tints"), loc)
}

func TestUnknownNamesFail(t *testing.T) {
	f := drivertest.New()
	p := mustLink(t, f)

	for _, name := range []string{"unusedScale", "mvp", "tints", ""} {
		loc, err := p.UniformLoc(name)
		assert.ErrorIs(t, err, ErrUnknownName, name)
		assert.Equal(t, int32(-1), loc)
	}
	_, err := p.AttribLoc("vUnused")
	var ne *NameError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "attribute", ne.Kind)
	assert.Equal(t, "vUnused", ne.Name)

	_, err = p.UniformLocs("MVP", "typo")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestLinkShadersAreDetached(t *testing.T) {
	f := drivertest.New()
	p := mustLink(t, f)
	assert.Zero(t, p.Param(driver.ATTACHED_SHADERS))
	// Shaders were destroyed after linking; the program still works.
	assert.Zero(t, f.Live(drivertest.KindShader))
	p.Use()
	assert.Equal(t, p.ID(), f.CurrentProgram)
}

func TestLinkMismatchedInterfaceFails(t *testing.T) {
	logs := observeLogs(t)
	f := drivertest.New()
	vs := mustCompile(t, f, VertexShader, testVertexShader)
	fs := mustCompile(t, f, FragmentShader, mismatchedFragmentShader)

	p, err := LinkProgram(f, vs, fs)
	assert.Nil(t, p)
	require.ErrorIs(t, err, ErrLink)
	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Log, "`color'")
	assert.Equal(t, 1, f.DeleteCount(drivertest.KindProgram, 1))
	assert.Equal(t, 1, logs.FilterMessage("program linking log").Len())
}

func TestFailedRelinkClearsNames(t *testing.T) {
	f := drivertest.New()
	vs := mustCompile(t, f, VertexShader, testVertexShader)
	fs := mustCompile(t, f, FragmentShader, testFragmentShader)
	bad := mustCompile(t, f, FragmentShader, mismatchedFragmentShader)

	p := NewProgram(f)
	p.Attach(vs, fs)
	require.NoError(t, p.Link())
	require.NotEmpty(t, p.UniformNames())

	p.Detach(fs)
	p.Attach(bad)
	require.ErrorIs(t, p.Link(), ErrLink)
	assert.False(t, p.Linked())
	assert.Empty(t, p.UniformNames())
	_, err := p.UniformLoc("MVP")
	assert.ErrorIs(t, err, ErrUnknownName)

	p.Detach(bad)
	p.Attach(fs)
	require.NoError(t, p.Link())
	assert.Equal(t, []string{"MVP", "alpha", "tints[0]"}, p.UniformNames())
}

func TestComputeProgram(t *testing.T) {
	f := drivertest.New()
	cs := mustCompile(t, f, ComputeShader, `#version 450
layout(local_size_x = 1) in;
uniform float dt;
void main() {
    float x = dt;
}
`)
	p, err := LinkProgram(f, cs)
	require.NoError(t, err)
	assert.Equal(t, []string{"dt"}, p.UniformNames())
	assert.Empty(t, p.AttribNames())

	vs := mustCompile(t, f, VertexShader, testVertexShader)
	_, err = LinkProgram(f, cs, vs)
	assert.ErrorIs(t, err, ErrLink)
}

func TestProgramMove(t *testing.T) {
	f := drivertest.New()
	p := mustLink(t, f)
	m := p.Move()
	assert.False(t, p.Linked())
	_, err := p.UniformLoc("MVP")
	assert.ErrorIs(t, err, ErrUnknownName)
	_, err = m.UniformLoc("MVP")
	assert.NoError(t, err)

	q := mustLink(t, f)
	old := q.ID()
	q.Assign(m)
	assert.Equal(t, 1, f.DeleteCount(drivertest.KindProgram, old))
	assert.True(t, q.Linked())
	assert.False(t, m.Linked())
}
