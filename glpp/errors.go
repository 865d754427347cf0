package glpp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCompile is wrapped by every *CompileError.
	ErrCompile = errors.New("shader compilation error")
	// ErrLink is wrapped by every *LinkError.
	ErrLink = errors.New("program link error")
	// ErrUnknownName is returned when a uniform or attribute name is not
	// active in the linked program. Declarations the compiler optimised away
	// are not active.
	ErrUnknownName = errors.New("unknown name")
	// ErrUnsupportedType is returned for uniform values outside the set
	// listed by UniformValue.
	ErrUnsupportedType = errors.New("unsupported uniform type")
	// ErrUnsupportedAttrib is returned for vertex attribute types with no
	// native format.
	ErrUnsupportedAttrib = errors.New("unsupported attribute type")
)

// CompileError carries the driver's info log for a shader that failed to
// compile.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", strings.TrimSpace(e.Log))
}

func (e *LinkError) Unwrap() error { return ErrLink }

// NameError reports a lookup of a name that is not in a program's
// name-to-location map.
type NameError struct {
	Kind string // "uniform" or "attribute"
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q is not active in the program", e.Kind, e.Name)
}

func (e *NameError) Unwrap() error { return ErrUnknownName }
