// Package drivertest provides an in-memory driver.Driver for tests.
//
// Fake keeps enough state to behave like a conforming OpenGL 4.5 driver for
// the calls glpp makes: objects get per-class identifiers starting at 1,
// buffer and texture uploads land in byte slices, shaders are "compiled" by a
// small GLSL declaration scanner and programs are "linked" by matching the
// declared stage interfaces. Invalid calls push the GL error the real driver
// would raise onto the queue read by GetError instead of panicking.
package drivertest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/richinsley/goglpp/driver"
)

// Object kinds used as keys of Fake.Deletes.
const (
	KindBuffer      = "buffer"
	KindVertexArray = "vertex array"
	KindShader      = "shader"
	KindProgram     = "program"
	KindTexture     = "texture"
)

type Buffer struct {
	Data       []byte
	Flags      uint32
	HasStorage bool
	Mapped     bool
	Label      string
}

type VertexBinding struct {
	Buffer  uint32
	Offset  int
	Stride  int32
	Divisor uint32
}

type VertexAttrib struct {
	Enabled    bool
	Binding    uint32
	Size       int32
	Type       uint32
	Normalized bool
	Integer    bool
	Offset     uint32
}

type VertexArray struct {
	ElementBuffer uint32
	Bindings      map[uint32]*VertexBinding
	Attribs       map[uint32]*VertexAttrib
	Label         string
}

func (v *VertexArray) attrib(index uint32) *VertexAttrib {
	a, ok := v.Attribs[index]
	if !ok {
		a = &VertexAttrib{}
		v.Attribs[index] = a
	}
	return a
}

func (v *VertexArray) binding(index uint32) *VertexBinding {
	b, ok := v.Bindings[index]
	if !ok {
		b = &VertexBinding{}
		v.Bindings[index] = b
	}
	return b
}

type Shader struct {
	Stage    uint32
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
	Label    string
	parsed   *source
}

// ActiveVar is one entry of a linked program's active uniform or attribute
// list.
type ActiveVar struct {
	Name     string
	Size     int32
	Type     uint32
	Location int32
}

type Program struct {
	Attached []*Shader
	Linked   bool
	Log      string
	Uniforms []ActiveVar
	Attribs  []ActiveVar
	// Values holds the last value uploaded to each uniform location.
	Values   map[int32]any
	Label    string
}

type TextureUpload struct {
	Level                int32
	X, Y, Z              int32
	Width, Height, Depth int32
	Format, Type         uint32
	Bytes                int
}

type Texture struct {
	Target         uint32
	Levels         int32
	InternalFormat uint32
	Width, Height  int32
	HasStorage     bool
	Params         map[uint32]int32
	Mipmapped      bool
	Uploads        []TextureUpload
	Label          string
}

// Draw records one draw or dispatch call together with the program and
// vertex array bound at the time.
type Draw struct {
	Call        string
	Mode        uint32
	First       int32
	Count       int32
	Instances   int32
	Program     uint32
	VertexArray uint32
}

// Fake is a recording driver.Driver.
type Fake struct {
	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Textures     map[uint32]*Texture

	// Deletes counts Delete* calls per object kind and identifier.
	Deletes map[string]map[uint32]int

	BoundBuffers     map[uint32]uint32
	BoundBufferBases map[[2]uint32]uint32
	BoundTextures    map[uint32]uint32
	TextureUnits     map[uint32]uint32
	CurrentProgram   uint32
	CurrentVAO       uint32
	Enabled          map[uint32]bool
	ClearColorValue  [4]float32
	ViewportValue    [4]int32
	Clears           []uint32
	Draws            []Draw
	Barriers         []uint32

	// FramebufferWidth and FramebufferHeight size the default framebuffer
	// that ReadPixels fills with the clear colour.
	FramebufferWidth  int32
	FramebufferHeight int32

	errors  []uint32
	nextIDs map[string]uint32
}

var _ driver.Driver = (*Fake)(nil)

// New returns an empty Fake with a 64x64 default framebuffer.
func New() *Fake {
	return &Fake{
		Buffers:           make(map[uint32]*Buffer),
		VertexArrays:      make(map[uint32]*VertexArray),
		Shaders:           make(map[uint32]*Shader),
		Programs:          make(map[uint32]*Program),
		Textures:          make(map[uint32]*Texture),
		Deletes:           make(map[string]map[uint32]int),
		BoundBuffers:      make(map[uint32]uint32),
		BoundBufferBases:  make(map[[2]uint32]uint32),
		BoundTextures:     make(map[uint32]uint32),
		TextureUnits:      make(map[uint32]uint32),
		Enabled:           make(map[uint32]bool),
		FramebufferWidth:  64,
		FramebufferHeight: 64,
		nextIDs:           make(map[string]uint32),
	}
}

func (f *Fake) newID(kind string) uint32 {
	f.nextIDs[kind]++
	return f.nextIDs[kind]
}

func (f *Fake) deleted(kind string, id uint32) {
	if id == 0 {
		return
	}
	m, ok := f.Deletes[kind]
	if !ok {
		m = make(map[uint32]int)
		f.Deletes[kind] = m
	}
	m[id]++
}

// DeleteCount reports how many times an object was deleted.
func (f *Fake) DeleteCount(kind string, id uint32) int {
	return f.Deletes[kind][id]
}

// Live reports the number of objects of kind that have not been deleted.
func (f *Fake) Live(kind string) int {
	switch kind {
	case KindBuffer:
		return len(f.Buffers)
	case KindVertexArray:
		return len(f.VertexArrays)
	case KindShader:
		n := 0
		for _, s := range f.Shaders {
			if !s.Deleted {
				n++
			}
		}
		return n
	case KindProgram:
		return len(f.Programs)
	case KindTexture:
		return len(f.Textures)
	}
	return 0
}

func (f *Fake) raise(code uint32) {
	f.errors = append(f.errors, code)
}

// Buffers

func (f *Fake) CreateBuffer() uint32 {
	id := f.newID(KindBuffer)
	f.Buffers[id] = &Buffer{}
	return id
}

func (f *Fake) DeleteBuffer(id uint32) {
	f.deleted(KindBuffer, id)
	delete(f.Buffers, id)
}

func (f *Fake) NamedBufferStorage(id uint32, size int, data []byte, flags uint32) {
	b, ok := f.Buffers[id]
	if !ok {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if b.HasStorage {
		// Storage is immutable once allocated.
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if size <= 0 {
		f.raise(driver.INVALID_VALUE)
		return
	}
	b.Data = make([]byte, size)
	copy(b.Data, data)
	b.Flags = flags
	b.HasStorage = true
}

func (f *Fake) NamedBufferSubData(id uint32, offset int, data []byte) {
	b, ok := f.Buffers[id]
	if !ok {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if b.Flags&driver.DYNAMIC_STORAGE_BIT == 0 {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if offset < 0 || offset+len(data) > len(b.Data) {
		f.raise(driver.INVALID_VALUE)
		return
	}
	copy(b.Data[offset:], data)
}

func (f *Fake) CopyNamedBufferSubData(src, dst uint32, readOffset, writeOffset, size int) {
	s, ok1 := f.Buffers[src]
	d, ok2 := f.Buffers[dst]
	if !ok1 || !ok2 {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if readOffset < 0 || writeOffset < 0 || size < 0 ||
		readOffset+size > len(s.Data) || writeOffset+size > len(d.Data) {
		f.raise(driver.INVALID_VALUE)
		return
	}
	copy(d.Data[writeOffset:writeOffset+size], s.Data[readOffset:readOffset+size])
}

func (f *Fake) MapNamedBufferRange(id uint32, offset, length int, access uint32) []byte {
	b, ok := f.Buffers[id]
	if !ok || b.Mapped {
		f.raise(driver.INVALID_OPERATION)
		return nil
	}
	if offset < 0 || length <= 0 || offset+length > len(b.Data) {
		f.raise(driver.INVALID_VALUE)
		return nil
	}
	b.Mapped = true
	return b.Data[offset : offset+length : offset+length]
}

func (f *Fake) UnmapNamedBuffer(id uint32) bool {
	b, ok := f.Buffers[id]
	if !ok || !b.Mapped {
		f.raise(driver.INVALID_OPERATION)
		return false
	}
	b.Mapped = false
	return true
}

func (f *Fake) BindBuffer(target, id uint32) { f.BoundBuffers[target] = id }

func (f *Fake) BindBufferBase(target, index, id uint32) {
	f.BoundBufferBases[[2]uint32{target, index}] = id
	f.BoundBuffers[target] = id
}

// Vertex arrays

func (f *Fake) CreateVertexArray() uint32 {
	id := f.newID(KindVertexArray)
	f.VertexArrays[id] = &VertexArray{
		Bindings: make(map[uint32]*VertexBinding),
		Attribs:  make(map[uint32]*VertexAttrib),
	}
	return id
}

func (f *Fake) DeleteVertexArray(id uint32) {
	f.deleted(KindVertexArray, id)
	delete(f.VertexArrays, id)
	if f.CurrentVAO == id {
		f.CurrentVAO = 0
	}
}

func (f *Fake) BindVertexArray(id uint32) { f.CurrentVAO = id }

func (f *Fake) vao(id uint32) *VertexArray {
	v, ok := f.VertexArrays[id]
	if !ok {
		f.raise(driver.INVALID_OPERATION)
	}
	return v
}

func (f *Fake) VertexArrayElementBuffer(vao, buffer uint32) {
	if v := f.vao(vao); v != nil {
		v.ElementBuffer = buffer
	}
}

func (f *Fake) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	if v := f.vao(vao); v != nil {
		b := v.binding(binding)
		b.Buffer, b.Offset, b.Stride = buffer, offset, stride
	}
}

func (f *Fake) VertexArrayAttribBinding(vao, attrib, binding uint32) {
	if v := f.vao(vao); v != nil {
		v.attrib(attrib).Binding = binding
	}
}

func (f *Fake) VertexArrayBindingDivisor(vao, binding, divisor uint32) {
	if v := f.vao(vao); v != nil {
		v.binding(binding).Divisor = divisor
	}
}

func (f *Fake) EnableVertexArrayAttrib(vao, attrib uint32) {
	if v := f.vao(vao); v != nil {
		v.attrib(attrib).Enabled = true
	}
}

func (f *Fake) VertexArrayAttribFormat(vao, attrib uint32, size int32, typ uint32, normalized bool, relativeOffset uint32) {
	if v := f.vao(vao); v != nil {
		a := v.attrib(attrib)
		a.Size, a.Type, a.Normalized, a.Integer, a.Offset = size, typ, normalized, false, relativeOffset
	}
}

func (f *Fake) VertexArrayAttribIFormat(vao, attrib uint32, size int32, typ uint32, relativeOffset uint32) {
	if v := f.vao(vao); v != nil {
		a := v.attrib(attrib)
		a.Size, a.Type, a.Normalized, a.Integer, a.Offset = size, typ, false, true, relativeOffset
	}
}

// Shaders

func (f *Fake) CreateShader(stage uint32) uint32 {
	if _, ok := stageNames[stage]; !ok {
		f.raise(driver.INVALID_ENUM)
		return 0
	}
	id := f.newID(KindShader)
	f.Shaders[id] = &Shader{Stage: stage}
	return id
}

func (f *Fake) DeleteShader(id uint32) {
	f.deleted(KindShader, id)
	s, ok := f.Shaders[id]
	if !ok {
		return
	}
	s.Deleted = true
	for _, p := range f.Programs {
		for _, a := range p.Attached {
			if a == s {
				// Deletion is deferred while the shader is still attached.
				return
			}
		}
	}
	delete(f.Shaders, id)
}

func (f *Fake) ShaderSource(id uint32, src string) {
	if s, ok := f.Shaders[id]; ok {
		s.Source = src
	} else {
		f.raise(driver.INVALID_VALUE)
	}
}

func (f *Fake) CompileShader(id uint32) {
	s, ok := f.Shaders[id]
	if !ok {
		f.raise(driver.INVALID_VALUE)
		return
	}
	s.parsed = compileSource(s.Stage, s.Source)
	s.Compiled = s.parsed.ok
	s.Log = s.parsed.log
}

func boolParam(b bool) int32 {
	if b {
		return driver.TRUE
	}
	return driver.FALSE
}

func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

func (f *Fake) GetShaderiv(id, pname uint32) int32 {
	s, ok := f.Shaders[id]
	if !ok {
		f.raise(driver.INVALID_VALUE)
		return 0
	}
	switch pname {
	case driver.COMPILE_STATUS:
		return boolParam(s.Compiled)
	case driver.INFO_LOG_LENGTH:
		return logLength(s.Log)
	case driver.SHADER_TYPE:
		return int32(s.Stage)
	case driver.SHADER_SOURCE_LENGTH:
		if s.Source == "" {
			return 0
		}
		return int32(len(s.Source) + 1)
	case driver.DELETE_STATUS:
		return boolParam(s.Deleted)
	}
	f.raise(driver.INVALID_ENUM)
	return 0
}

func (f *Fake) GetShaderInfoLog(id uint32) string {
	if s, ok := f.Shaders[id]; ok {
		return s.Log
	}
	f.raise(driver.INVALID_VALUE)
	return ""
}

// Programs

func (f *Fake) CreateProgram() uint32 {
	id := f.newID(KindProgram)
	f.Programs[id] = &Program{Values: make(map[int32]any)}
	return id
}

func (f *Fake) DeleteProgram(id uint32) {
	f.deleted(KindProgram, id)
	p, ok := f.Programs[id]
	if !ok {
		return
	}
	delete(f.Programs, id)
	for _, s := range p.Attached {
		f.reap(s)
	}
	if f.CurrentProgram == id {
		f.CurrentProgram = 0
	}
}

// reap drops a shader flagged for deletion once nothing holds it.
func (f *Fake) reap(s *Shader) {
	if !s.Deleted {
		return
	}
	for _, p := range f.Programs {
		for _, a := range p.Attached {
			if a == s {
				return
			}
		}
	}
	for id, cand := range f.Shaders {
		if cand == s {
			delete(f.Shaders, id)
		}
	}
}

func (f *Fake) UseProgram(id uint32) {
	if id != 0 {
		if p, ok := f.Programs[id]; !ok || !p.Linked {
			f.raise(driver.INVALID_OPERATION)
			return
		}
	}
	f.CurrentProgram = id
}

func (f *Fake) AttachShader(program, shader uint32) {
	p, ok1 := f.Programs[program]
	s, ok2 := f.Shaders[shader]
	if !ok1 || !ok2 {
		f.raise(driver.INVALID_VALUE)
		return
	}
	for _, a := range p.Attached {
		if a == s {
			f.raise(driver.INVALID_OPERATION)
			return
		}
	}
	p.Attached = append(p.Attached, s)
}

func (f *Fake) DetachShader(program, shader uint32) {
	p, ok1 := f.Programs[program]
	s, ok2 := f.Shaders[shader]
	if !ok1 || !ok2 {
		f.raise(driver.INVALID_VALUE)
		return
	}
	for i, a := range p.Attached {
		if a == s {
			p.Attached = append(p.Attached[:i], p.Attached[i+1:]...)
			f.reap(s)
			return
		}
	}
	f.raise(driver.INVALID_OPERATION)
}

func (f *Fake) LinkProgram(id uint32) {
	p, ok := f.Programs[id]
	if !ok {
		f.raise(driver.INVALID_VALUE)
		return
	}
	p.Linked, p.Log, p.Uniforms, p.Attribs = link(p.Attached)
	p.Values = make(map[int32]any)
}

// link resolves the attached shaders into a program the way a GLSL linker
// would: stage interfaces must match, uniforms must agree on type, and only
// declarations that are referenced survive as active variables.
func link(attached []*Shader) (bool, string, []ActiveVar, []ActiveVar) {
	var errs []string
	fail := func(format string, args ...any) {
		errs = append(errs, "error: "+fmt.Sprintf(format, args...))
	}
	if len(attached) == 0 {
		fail("no shaders attached to the program")
	}
	byStage := make(map[uint32]*source)
	for _, s := range attached {
		if !s.Compiled || s.parsed == nil {
			fail("linking with uncompiled/unspecialized shader")
			continue
		}
		if _, dup := byStage[s.Stage]; dup {
			fail("multiple %s shaders attached", stageNames[s.Stage])
			continue
		}
		byStage[s.Stage] = s.parsed
	}
	if _, compute := byStage[driver.COMPUTE_SHADER]; compute && len(byStage) > 1 {
		fail("compute shader may not be linked with other stages")
	}

	var prev *source
	for _, stage := range pipelineOrder {
		cur, ok := byStage[stage]
		if !ok {
			continue
		}
		if prev != nil {
			for _, in := range cur.decls {
				if in.qualifier != "in" || strings.HasPrefix(in.name, "gl_") {
					continue
				}
				out, found := prev.find("out", in.name)
				if !found {
					fail("%s shader input `%s' has no matching output in the previous stage",
						stageNames[stage], in.name)
					continue
				}
				if out.typ != in.typ {
					fail("%s shader output `%s' declared as type `%s', but %s shader input declared as type `%s'",
						stageNames[prev.stage], in.name, out.typ, stageNames[stage], in.typ)
				}
			}
		}
		prev = cur
	}

	type uniformInfo struct {
		decl
		used bool
	}
	uniforms := make(map[string]*uniformInfo)
	stages := make([]uint32, 0, len(byStage))
	for stage := range byStage {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i] < stages[j] })
	for _, stage := range stages {
		for _, d := range byStage[stage].decls {
			if d.qualifier != "uniform" {
				continue
			}
			if u, ok := uniforms[d.name]; ok {
				if u.typ != d.typ {
					fail("uniform `%s' declared as type `%s' and type `%s'", d.name, u.typ, d.typ)
				}
				u.used = u.used || d.used
				continue
			}
			uniforms[d.name] = &uniformInfo{decl: d, used: d.used}
		}
	}

	if len(errs) > 0 {
		return false, strings.Join(errs, "\n") + "\n", nil, nil
	}

	var activeUniforms []ActiveVar
	names := make([]string, 0, len(uniforms))
	for name, u := range uniforms {
		if u.used {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var next int32
	for _, name := range names {
		u := uniforms[name]
		reported := name
		if u.size > 1 {
			reported += "[0]"
		}
		loc := next
		if u.location >= 0 {
			loc = u.location
		}
		activeUniforms = append(activeUniforms, ActiveVar{Name: reported, Size: u.size, Type: glslTypes[u.typ], Location: loc})
		if loc+u.size > next {
			next = loc + u.size
		}
	}

	var activeAttribs []ActiveVar
	if vs, ok := byStage[driver.VERTEX_SHADER]; ok {
		taken := make(map[int32]bool)
		var pending []decl
		for _, d := range vs.decls {
			if d.qualifier != "in" || !d.used {
				continue
			}
			if d.location >= 0 {
				for i := int32(0); i < slots(d.typ)*d.size; i++ {
					taken[d.location+i] = true
				}
				activeAttribs = append(activeAttribs, ActiveVar{Name: d.name, Size: d.size, Type: glslTypes[d.typ], Location: d.location})
				continue
			}
			pending = append(pending, d)
		}
		sort.Slice(pending, func(i, j int) bool { return pending[i].name < pending[j].name })
		for _, d := range pending {
			need := slots(d.typ) * d.size
			loc := int32(0)
			for ; ; loc++ {
				free := true
				for i := int32(0); i < need; i++ {
					if taken[loc+i] {
						free = false
						break
					}
				}
				if free {
					break
				}
			}
			for i := int32(0); i < need; i++ {
				taken[loc+i] = true
			}
			activeAttribs = append(activeAttribs, ActiveVar{Name: d.name, Size: d.size, Type: glslTypes[d.typ], Location: loc})
		}
		sort.Slice(activeAttribs, func(i, j int) bool { return activeAttribs[i].Name < activeAttribs[j].Name })
	}
	return true, "", activeUniforms, activeAttribs
}

func maxNameLength(vars []ActiveVar) int32 {
	var n int32
	for _, v := range vars {
		if l := int32(len(v.Name) + 1); l > n {
			n = l
		}
	}
	return n
}

func (f *Fake) GetProgramiv(id, pname uint32) int32 {
	p, ok := f.Programs[id]
	if !ok {
		f.raise(driver.INVALID_VALUE)
		return 0
	}
	switch pname {
	case driver.LINK_STATUS:
		return boolParam(p.Linked)
	case driver.INFO_LOG_LENGTH:
		return logLength(p.Log)
	case driver.ATTACHED_SHADERS:
		return int32(len(p.Attached))
	case driver.ACTIVE_UNIFORMS:
		return int32(len(p.Uniforms))
	case driver.ACTIVE_UNIFORM_MAX_LENGTH:
		return maxNameLength(p.Uniforms)
	case driver.ACTIVE_ATTRIBUTES:
		return int32(len(p.Attribs))
	case driver.ACTIVE_ATTRIBUTE_MAX_LENGTH:
		return maxNameLength(p.Attribs)
	case driver.DELETE_STATUS:
		return driver.FALSE
	}
	f.raise(driver.INVALID_ENUM)
	return 0
}

func (f *Fake) GetProgramInfoLog(id uint32) string {
	if p, ok := f.Programs[id]; ok {
		return p.Log
	}
	f.raise(driver.INVALID_VALUE)
	return ""
}

func (f *Fake) active(vars []ActiveVar, index uint32, bufSize int32) (string, int32, uint32) {
	if int(index) >= len(vars) {
		f.raise(driver.INVALID_VALUE)
		return "", 0, 0
	}
	v := vars[index]
	name := v.Name
	if bufSize <= 0 {
		name = ""
	} else if int32(len(name)) > bufSize-1 {
		name = name[:bufSize-1]
	}
	return name, v.Size, v.Type
}

func (f *Fake) GetActiveUniform(program, index uint32, bufSize int32) (string, int32, uint32) {
	p, ok := f.Programs[program]
	if !ok {
		f.raise(driver.INVALID_VALUE)
		return "", 0, 0
	}
	return f.active(p.Uniforms, index, bufSize)
}

func (f *Fake) GetActiveAttrib(program, index uint32, bufSize int32) (string, int32, uint32) {
	p, ok := f.Programs[program]
	if !ok {
		f.raise(driver.INVALID_VALUE)
		return "", 0, 0
	}
	return f.active(p.Attribs, index, bufSize)
}

// location resolves name, name[0] and name[i] the way glGet*Location does.
func location(vars []ActiveVar, name string) int32 {
	base, index := name, int32(0)
	if i := strings.IndexByte(name, '['); i >= 0 && strings.HasSuffix(name, "]") {
		base = name[:i]
		if _, err := fmt.Sscanf(name[i:], "[%d]", &index); err != nil {
			return -1
		}
	}
	for _, v := range vars {
		vbase := strings.TrimSuffix(v.Name, "[0]")
		if vbase == base && index < v.Size {
			return v.Location + index
		}
	}
	return -1
}

func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	p, ok := f.Programs[program]
	if !ok || !p.Linked {
		f.raise(driver.INVALID_OPERATION)
		return -1
	}
	return location(p.Uniforms, name)
}

func (f *Fake) GetAttribLocation(program uint32, name string) int32 {
	p, ok := f.Programs[program]
	if !ok || !p.Linked {
		f.raise(driver.INVALID_OPERATION)
		return -1
	}
	return location(p.Attribs, name)
}

// Uniforms

func (f *Fake) setUniform(program uint32, location int32, v any) {
	p, ok := f.Programs[program]
	if !ok || !p.Linked {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if location == -1 {
		// GL ignores uploads to location -1.
		return
	}
	p.Values[location] = v
}

func clone(v []float32) []float32 { return append([]float32(nil), v...) }

func (f *Fake) ProgramUniform1i(program uint32, location, v int32) {
	f.setUniform(program, location, v)
}

func (f *Fake) ProgramUniform1ui(program uint32, location int32, v uint32) {
	f.setUniform(program, location, v)
}

func (f *Fake) ProgramUniform1f(program uint32, location int32, v float32) {
	f.setUniform(program, location, v)
}

func (f *Fake) ProgramUniform1fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

func (f *Fake) ProgramUniform2fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

func (f *Fake) ProgramUniform3fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

func (f *Fake) ProgramUniform4fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

func (f *Fake) ProgramUniformMatrix2fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

func (f *Fake) ProgramUniformMatrix3fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

func (f *Fake) ProgramUniformMatrix4fv(program uint32, location int32, v []float32) {
	f.setUniform(program, location, clone(v))
}

// UniformValue returns the last value uploaded to the named uniform of a
// program, or nil.
func (f *Fake) UniformValue(program uint32, name string) any {
	p, ok := f.Programs[program]
	if !ok {
		return nil
	}
	loc := location(p.Uniforms, name)
	if loc < 0 {
		return nil
	}
	return p.Values[loc]
}

// Textures

func (f *Fake) CreateTexture(target uint32) uint32 {
	switch target {
	case driver.TEXTURE_1D, driver.TEXTURE_2D, driver.TEXTURE_3D, driver.TEXTURE_CUBE_MAP:
	default:
		f.raise(driver.INVALID_ENUM)
		return 0
	}
	id := f.newID(KindTexture)
	f.Textures[id] = &Texture{Target: target, Params: make(map[uint32]int32)}
	return id
}

func (f *Fake) DeleteTexture(id uint32) {
	f.deleted(KindTexture, id)
	delete(f.Textures, id)
}

func (f *Fake) BindTexture(target, id uint32) { f.BoundTextures[target] = id }

func (f *Fake) BindTextureUnit(unit, id uint32) { f.TextureUnits[unit] = id }

func (f *Fake) texture(id uint32) *Texture {
	t, ok := f.Textures[id]
	if !ok {
		f.raise(driver.INVALID_OPERATION)
	}
	return t
}

func (f *Fake) GenerateTextureMipmap(id uint32) {
	if t := f.texture(id); t != nil {
		t.Mipmapped = true
	}
}

func (f *Fake) TextureParameteri(id, pname uint32, param int32) {
	if t := f.texture(id); t != nil {
		t.Params[pname] = param
	}
}

func (f *Fake) storage(id uint32, dims int, levels int32, internalFormat uint32, width, height int32) {
	t := f.texture(id)
	if t == nil {
		return
	}
	if t.HasStorage {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	want := 2
	if t.Target == driver.TEXTURE_1D {
		want = 1
	}
	if dims != want {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	if levels < 1 || width < 1 || height < 1 {
		f.raise(driver.INVALID_VALUE)
		return
	}
	if t.Target == driver.TEXTURE_CUBE_MAP && width != height {
		f.raise(driver.INVALID_VALUE)
		return
	}
	t.Levels, t.InternalFormat, t.Width, t.Height, t.HasStorage = levels, internalFormat, width, height, true
}

func (f *Fake) TextureStorage1D(id uint32, levels int32, internalFormat uint32, width int32) {
	f.storage(id, 1, levels, internalFormat, width, 1)
}

func (f *Fake) TextureStorage2D(id uint32, levels int32, internalFormat uint32, width, height int32) {
	f.storage(id, 2, levels, internalFormat, width, height)
}

func (f *Fake) upload(id uint32, u TextureUpload) {
	t := f.texture(id)
	if t == nil {
		return
	}
	if !t.HasStorage || u.Level >= t.Levels {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	w, h := t.Width>>u.Level, t.Height>>u.Level
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	layers := int32(1)
	if t.Target == driver.TEXTURE_CUBE_MAP {
		layers = 6
	}
	if u.X < 0 || u.Y < 0 || u.Z < 0 || u.X+u.Width > w || u.Y+u.Height > h || u.Z+u.Depth > layers {
		f.raise(driver.INVALID_VALUE)
		return
	}
	t.Uploads = append(t.Uploads, u)
}

func (f *Fake) TextureSubImage1D(id uint32, level, xoffset, width int32, format, typ uint32, pixels []byte) {
	f.upload(id, TextureUpload{Level: level, X: xoffset, Width: width, Height: 1, Depth: 1, Format: format, Type: typ, Bytes: len(pixels)})
}

func (f *Fake) TextureSubImage2D(id uint32, level, xoffset, yoffset, width, height int32, format, typ uint32, pixels []byte) {
	f.upload(id, TextureUpload{Level: level, X: xoffset, Y: yoffset, Width: width, Height: height, Depth: 1, Format: format, Type: typ, Bytes: len(pixels)})
}

func (f *Fake) TextureSubImage3D(id uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ uint32, pixels []byte) {
	f.upload(id, TextureUpload{Level: level, X: xoffset, Y: yoffset, Z: zoffset, Width: width, Height: height, Depth: depth, Format: format, Type: typ, Bytes: len(pixels)})
}

// Debugging

func (f *Fake) ObjectLabel(namespace, id uint32, label string) {
	switch namespace {
	case driver.BUFFER:
		if b, ok := f.Buffers[id]; ok {
			b.Label = label
			return
		}
	case driver.VERTEX_ARRAY:
		if v, ok := f.VertexArrays[id]; ok {
			v.Label = label
			return
		}
	case driver.SHADER:
		if s, ok := f.Shaders[id]; ok {
			s.Label = label
			return
		}
	case driver.PROGRAM:
		if p, ok := f.Programs[id]; ok {
			p.Label = label
			return
		}
	case driver.TEXTURE:
		if t, ok := f.Textures[id]; ok {
			t.Label = label
			return
		}
	default:
		f.raise(driver.INVALID_ENUM)
		return
	}
	f.raise(driver.INVALID_VALUE)
}

// GetError pops the oldest recorded error, like glGetError.
func (f *Fake) GetError() uint32 {
	if len(f.errors) == 0 {
		return driver.NO_ERROR
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

// Errors drains and returns every recorded error.
func (f *Fake) Errors() []uint32 {
	errs := f.errors
	f.errors = nil
	return errs
}

// Draw and dispatch

func (f *Fake) Enable(capability uint32)  { f.Enabled[capability] = true }
func (f *Fake) Disable(capability uint32) { f.Enabled[capability] = false }

func (f *Fake) Viewport(x, y, width, height int32) {
	f.ViewportValue = [4]int32{x, y, width, height}
}

func (f *Fake) ClearColor(r, g, b, a float32) { f.ClearColorValue = [4]float32{r, g, b, a} }

func (f *Fake) Clear(mask uint32) { f.Clears = append(f.Clears, mask) }

func (f *Fake) draw(d Draw) {
	if f.CurrentProgram == 0 {
		f.raise(driver.INVALID_OPERATION)
		return
	}
	d.Program, d.VertexArray = f.CurrentProgram, f.CurrentVAO
	f.Draws = append(f.Draws, d)
}

func (f *Fake) DrawArrays(mode uint32, first, count int32) {
	f.draw(Draw{Call: "DrawArrays", Mode: mode, First: first, Count: count, Instances: 1})
}

func (f *Fake) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	f.draw(Draw{Call: "DrawElements", Mode: mode, Count: count, Instances: 1})
}

func (f *Fake) DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instances int32) {
	f.draw(Draw{Call: "DrawElementsInstanced", Mode: mode, Count: count, Instances: instances})
}

func (f *Fake) DispatchCompute(x, y, z uint32) {
	f.draw(Draw{Call: "DispatchCompute", Count: int32(x * y * z), Instances: 1})
}

func (f *Fake) MemoryBarrier(barriers uint32) { f.Barriers = append(f.Barriers, barriers) }

func (f *Fake) ReadPixels(x, y, width, height int32, format, typ uint32, dst []byte) {
	if format != driver.RGBA || typ != driver.UNSIGNED_BYTE {
		f.raise(driver.INVALID_ENUM)
		return
	}
	if x < 0 || y < 0 || x+width > f.FramebufferWidth || y+height > f.FramebufferHeight {
		f.raise(driver.INVALID_VALUE)
		return
	}
	var px [4]byte
	for i, c := range f.ClearColorValue {
		px[i] = byte(c*255 + 0.5)
	}
	for i := 0; i+4 <= len(dst) && i < int(width*height)*4; i += 4 {
		copy(dst[i:i+4], px[:])
	}
}
