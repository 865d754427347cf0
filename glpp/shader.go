package glpp

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/richinsley/goglpp/driver"
)

// ShaderStage is the pipeline stage a shader is compiled for.
type ShaderStage uint32

const (
	VertexShader         ShaderStage = driver.VERTEX_SHADER
	TessControlShader    ShaderStage = driver.TESS_CONTROL_SHADER
	TessEvaluationShader ShaderStage = driver.TESS_EVALUATION_SHADER
	GeometryShader       ShaderStage = driver.GEOMETRY_SHADER
	FragmentShader       ShaderStage = driver.FRAGMENT_SHADER
	ComputeShader        ShaderStage = driver.COMPUTE_SHADER
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case TessControlShader:
		return "tessellation control"
	case TessEvaluationShader:
		return "tessellation evaluation"
	case GeometryShader:
		return "geometry"
	case FragmentShader:
		return "fragment"
	case ComputeShader:
		return "compute"
	}
	return fmt.Sprintf("ShaderStage(0x%x)", uint32(s))
}

// Shader is a GL shader object.
type Shader struct {
	object
	stage    ShaderStage
	compiled bool
}

// NewShader creates an empty shader for stage.
func NewShader(d driver.Driver, stage ShaderStage) *Shader {
	return &Shader{
		object: newObject(d, driver.SHADER, d.CreateShader(uint32(stage)), d.DeleteShader),
		stage:  stage,
	}
}

// CompileShader creates a shader and compiles src. On failure the shader is
// deleted before the *CompileError is returned.
func CompileShader(d driver.Driver, stage ShaderStage, src string) (*Shader, error) {
	s := NewShader(d, stage)
	s.SetSource(src)
	if err := s.Compile(); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

// ShaderFromFile compiles the contents of path.
func ShaderFromFile(d driver.Driver, stage ShaderStage, path string) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader source: %w", err)
	}
	return CompileShader(d, stage, string(src))
}

// Move transfers ownership to a new Shader; s is left empty.
func (s *Shader) Move() *Shader {
	m := &Shader{object: s.object.move(), stage: s.stage, compiled: s.compiled}
	s.compiled = false
	return m
}

// Assign releases s's shader and takes ownership of src's.
func (s *Shader) Assign(src *Shader) {
	if s == src {
		return
	}
	s.object.assign(&src.object)
	s.stage, s.compiled = src.stage, src.compiled
	src.compiled = false
}

// Stage returns the stage the shader was created for.
func (s *Shader) Stage() ShaderStage { return s.stage }

// Compiled reports whether the last Compile succeeded.
func (s *Shader) Compiled() bool { return s.compiled }

// SetSource replaces the shader's source text. The text is passed to the
// driver as is.
func (s *Shader) SetSource(src string) {
	s.d.ShaderSource(s.ID(), src)
}

// Compile compiles the current source. A non-empty info log is written to
// the package logger even when compilation succeeds.
func (s *Shader) Compile() error {
	id := s.ID()
	s.d.CompileShader(id)

	var log string
	if s.d.GetShaderiv(id, driver.INFO_LOG_LENGTH) > 0 {
		log = s.d.GetShaderInfoLog(id)
	}
	s.compiled = s.d.GetShaderiv(id, driver.COMPILE_STATUS) == driver.TRUE
	reportLog("shader compilation log", log, s.compiled,
		zap.Stringer("stage", s.stage), zap.Uint32("id", id))
	if !s.compiled {
		return &CompileError{Stage: s.stage, Log: log}
	}
	return nil
}
