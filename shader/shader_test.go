package shader

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goglpp/driver/drivertest"
	"github.com/richinsley/goglpp/glpp"
	inputs "github.com/richinsley/goglpp/inputs"
)

func TestGeneratePreamble(t *testing.T) {
	f := drivertest.New()
	palette, err := inputs.NewPaletteTexture(f, []color.Color{color.Black, color.White}, inputs.Sampler{})
	require.NoError(t, err)
	defer palette.Destroy()
	logo, err := inputs.NewImageTexture(f, image.NewRGBA(image.Rect(0, 0, 2, 2)), inputs.Sampler{})
	require.NoError(t, err)
	defer logo.Destroy()

	got := GeneratePreamble([]SamplerBinding{{Name: "palette", Channel: palette}, {Name: "logo", Channel: logo}, {Name: "unbound"}})
	assert.Equal(t, "#version 450 core\n"+
		"uniform sampler1D palette;\n"+
		"uniform sampler2D logo;\n"+
		"uniform sampler2D unbound;\n", got)
	assert.Equal(t, "#version 450 core\n", GeneratePreamble(nil))
}

func TestDemoProgramsLink(t *testing.T) {
	tests := []struct {
		name     string
		stages   map[glpp.ShaderStage]string
		uniforms []string
		attribs  []string
	}{
		{
			name: "triangle",
			stages: map[glpp.ShaderStage]string{
				glpp.VertexShader:   TriangleVertex,
				glpp.FragmentShader: TriangleFragment,
			},
			uniforms: []string{"MVP"},
			attribs:  []string{"vCol", "vPos"},
		},
		{
			name: "quad",
			stages: map[glpp.ShaderStage]string{
				glpp.VertexShader:   QuadVertex,
				glpp.FragmentShader: GetShader([]SamplerBinding{{Name: "logo"}}, QuadFragment),
			},
			uniforms: []string{"MVP", "logo"},
			attribs:  []string{"tex", "xy"},
		},
		{
			name: "axes",
			stages: map[glpp.ShaderStage]string{
				glpp.VertexShader:   AxesVertex,
				glpp.GeometryShader: AxesGeometry,
				glpp.FragmentShader: AxesFragment,
			},
			uniforms: []string{"viewPersp"},
			attribs:  []string{"model"},
		},
		{
			name: "dices",
			stages: map[glpp.ShaderStage]string{
				glpp.VertexShader:   DicesVertex,
				glpp.FragmentShader: GetShader([]SamplerBinding{{Name: "faces"}}, DicesFragment),
			},
			uniforms: []string{"faces", "viewPersp"},
			attribs:  []string{"model", "pos"},
		},
		{
			name: "nbody",
			stages: map[glpp.ShaderStage]string{
				glpp.VertexShader:   GetShader([]SamplerBinding{{Name: "palette"}}, NBodyVertex),
				glpp.FragmentShader: NBodyFragment,
			},
			uniforms: []string{"palette", "persp", "view"},
			attribs:  []string{"acc", "pos"},
		},
		{
			name: "nbody compute",
			stages: map[glpp.ShaderStage]string{
				glpp.ComputeShader: NBodyCompute,
			},
			uniforms: []string{"dt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := drivertest.New()
			var shaders []*glpp.Shader
			for stage, src := range tt.stages {
				s, err := glpp.CompileShader(f, stage, src)
				require.NoError(t, err)
				defer s.Destroy()
				shaders = append(shaders, s)
			}
			p, err := glpp.LinkProgram(f, shaders...)
			require.NoError(t, err)
			defer p.Destroy()

			assert.Equal(t, tt.uniforms, p.UniformNames())
			assert.Equal(t, tt.attribs, nilIfEmpty(p.AttribNames()))
			assert.Empty(t, f.Errors())
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
