package glpp

import "github.com/richinsley/goglpp/driver"

// ReleaseFunc deletes the native resource behind id.
type ReleaseFunc func(id uint32)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle owns a single native resource identifier. Zero is the empty
// identifier and is never released.
type Handle struct {
	_       noCopy
	id      uint32
	release ReleaseFunc
}

// NewHandle takes ownership of id.
func NewHandle(id uint32, release ReleaseFunc) *Handle {
	return &Handle{id: id, release: release}
}

// ID returns the owned identifier, or 0.
func (h *Handle) ID() uint32 {
	if h == nil {
		return 0
	}
	return h.id
}

// Valid reports whether the handle owns a resource.
func (h *Handle) Valid() bool { return h.ID() != 0 }

// Move transfers the identifier to a new Handle and empties h.
func (h *Handle) Move() *Handle {
	m := &Handle{id: h.id, release: h.release}
	h.id = 0
	return m
}

// Assign releases the identifier held by h, then takes ownership of the one
// held by src, leaving src empty. Assigning a handle to itself does nothing.
func (h *Handle) Assign(src *Handle) {
	if h == src {
		return
	}
	h.Release()
	h.id, h.release = src.id, src.release
	src.id = 0
}

// Release deletes the owned resource. It is a no-op on an empty handle.
func (h *Handle) Release() {
	if h == nil || h.id == 0 {
		return
	}
	id := h.id
	h.id = 0
	if h.release != nil {
		h.release(id)
	}
}

// object is the part every resource wrapper shares: the driver it was
// created on, its handle and the KHR_debug namespace used for labels.
type object struct {
	d         driver.Driver
	handle    *Handle
	namespace uint32
}

func newObject(d driver.Driver, namespace, id uint32, release ReleaseFunc) object {
	return object{d: d, handle: NewHandle(id, release), namespace: namespace}
}

// ID returns the native identifier, or 0 once the object has been moved
// from or destroyed.
func (o *object) ID() uint32 { return o.handle.ID() }

// Destroy releases the native resource.
func (o *object) Destroy() { o.handle.Release() }

// Label attaches a debug label to the object, shown by GL debuggers and in
// driver debug messages.
func (o *object) Label(name string) {
	if o.handle.Valid() {
		o.d.ObjectLabel(o.namespace, o.handle.ID(), name)
	}
}

func (o *object) move() object {
	return object{d: o.d, handle: o.handle.Move(), namespace: o.namespace}
}

func (o *object) assign(src *object) {
	if o.handle == nil {
		o.handle = &Handle{}
	}
	o.handle.Assign(src.handle)
	o.d = src.d
}
