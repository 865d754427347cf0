package glpp

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/richinsley/goglpp/driver"
)

// Program is a GL program object together with the locations of its active
// uniforms and attributes.
type Program struct {
	object
	linked   bool
	uniforms map[string]int32
	attribs  map[string]int32
}

// NewProgram creates an empty program.
func NewProgram(d driver.Driver) *Program {
	return &Program{object: newObject(d, driver.PROGRAM, d.CreateProgram(), d.DeleteProgram)}
}

// LinkProgram attaches shaders, links them and detaches them again, so the
// shaders may be destroyed as soon as it returns. On failure the program is
// deleted before the *LinkError is returned.
func LinkProgram(d driver.Driver, shaders ...*Shader) (*Program, error) {
	p := NewProgram(d)
	p.Attach(shaders...)
	err := p.Link()
	p.Detach(shaders...)
	if err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// Move transfers ownership to a new Program; p is left empty and unlinked.
func (p *Program) Move() *Program {
	m := &Program{object: p.object.move(), linked: p.linked, uniforms: p.uniforms, attribs: p.attribs}
	p.linked, p.uniforms, p.attribs = false, nil, nil
	return m
}

// Assign releases p's program and takes ownership of src's.
func (p *Program) Assign(src *Program) {
	if p == src {
		return
	}
	p.object.assign(&src.object)
	p.linked, p.uniforms, p.attribs = src.linked, src.uniforms, src.attribs
	src.linked, src.uniforms, src.attribs = false, nil, nil
}

// Attach attaches each shader in order.
func (p *Program) Attach(shaders ...*Shader) {
	for _, s := range shaders {
		p.d.AttachShader(p.ID(), s.ID())
	}
}

// Detach detaches each shader in order.
func (p *Program) Detach(shaders ...*Shader) {
	for _, s := range shaders {
		p.d.DetachShader(p.ID(), s.ID())
	}
}

// Param queries a glGetProgramiv parameter.
func (p *Program) Param(pname uint32) int32 {
	return p.d.GetProgramiv(p.ID(), pname)
}

// Linked reports whether the last Link succeeded.
func (p *Program) Linked() bool { return p.linked }

// Use installs the program in the current rendering state.
func (p *Program) Use() {
	p.d.UseProgram(p.ID())
}

// Link links the attached shaders and rebuilds the uniform and attribute
// location maps from the driver's active variables. A failed link leaves
// both maps empty.
func (p *Program) Link() error {
	id := p.ID()
	p.d.LinkProgram(id)

	var log string
	if p.Param(driver.INFO_LOG_LENGTH) > 0 {
		log = p.d.GetProgramInfoLog(id)
	}
	p.linked = p.Param(driver.LINK_STATUS) == driver.TRUE
	reportLog("program linking log", log, p.linked, zap.Uint32("id", id))
	if !p.linked {
		p.uniforms, p.attribs = nil, nil
		return &LinkError{Log: log}
	}

	p.uniforms = p.locations(driver.ACTIVE_UNIFORMS, driver.ACTIVE_UNIFORM_MAX_LENGTH,
		p.d.GetActiveUniform, p.d.GetUniformLocation)
	p.attribs = p.locations(driver.ACTIVE_ATTRIBUTES, driver.ACTIVE_ATTRIBUTE_MAX_LENGTH,
		p.d.GetActiveAttrib, p.d.GetAttribLocation)
	return nil
}

type (
	getActiveFunc   func(program, index uint32, bufSize int32) (string, int32, uint32)
	getLocationFunc func(program uint32, name string) int32
)

func (p *Program) locations(count, maxLength uint32, active getActiveFunc, location getLocationFunc) map[string]int32 {
	id := p.ID()
	n := p.Param(count)
	bufSize := p.Param(maxLength)
	locs := make(map[string]int32, n)
	for i := int32(0); i < n; i++ {
		name, _, _ := active(id, uint32(i), bufSize)
		locs[name] = location(id, name)
	}
	return locs
}

func lookup(kind string, m map[string]int32, name string) (int32, error) {
	loc, ok := m[name]
	if !ok {
		return -1, &NameError{Kind: kind, Name: name}
	}
	return loc, nil
}

func lookupAll(kind string, m map[string]int32, names []string) ([]int32, error) {
	locs := make([]int32, len(names))
	for i, name := range names {
		loc, err := lookup(kind, m, name)
		if err != nil {
			return nil, err
		}
		locs[i] = loc
	}
	return locs, nil
}

// UniformLoc returns the location of an active uniform. Arrays are listed
// under the name the driver reports, such as "lights[0]".
func (p *Program) UniformLoc(name string) (int32, error) {
	return lookup("uniform", p.uniforms, name)
}

// UniformLocs returns the locations of several uniforms in order.
func (p *Program) UniformLocs(names ...string) ([]int32, error) {
	return lookupAll("uniform", p.uniforms, names)
}

// AttribLoc returns the location of an active vertex attribute.
func (p *Program) AttribLoc(name string) (int32, error) {
	return lookup("attribute", p.attribs, name)
}

// AttribLocs returns the locations of several attributes in order.
func (p *Program) AttribLocs(names ...string) ([]int32, error) {
	return lookupAll("attribute", p.attribs, names)
}

// UniformNames lists the active uniforms, sorted.
func (p *Program) UniformNames() []string {
	return slices.Sorted(maps.Keys(p.uniforms))
}

// AttribNames lists the active attributes, sorted.
func (p *Program) AttribNames() []string {
	return slices.Sorted(maps.Keys(p.attribs))
}
