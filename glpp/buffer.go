package glpp

import (
	"unsafe"

	"github.com/richinsley/goglpp/driver"
)

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	ArrayBuffer         BufferTarget = driver.ARRAY_BUFFER
	ElementArrayBuffer  BufferTarget = driver.ELEMENT_ARRAY_BUFFER
	ShaderStorageBuffer BufferTarget = driver.SHADER_STORAGE_BUFFER
	UniformBuffer       BufferTarget = driver.UNIFORM_BUFFER
	PixelPackBuffer     BufferTarget = driver.PIXEL_PACK_BUFFER
	PixelUnpackBuffer   BufferTarget = driver.PIXEL_UNPACK_BUFFER
	CopyReadBuffer      BufferTarget = driver.COPY_READ_BUFFER
	CopyWriteBuffer     BufferTarget = driver.COPY_WRITE_BUFFER
)

// StorageFlags are the glNamedBufferStorage flags. The map bits double as
// the access mask of Buffer.Map.
type StorageFlags uint32

const (
	DynamicStorage StorageFlags = driver.DYNAMIC_STORAGE_BIT
	MapRead        StorageFlags = driver.MAP_READ_BIT
	MapWrite       StorageFlags = driver.MAP_WRITE_BIT
	MapPersistent  StorageFlags = driver.MAP_PERSISTENT_BIT
	MapCoherent    StorageFlags = driver.MAP_COHERENT_BIT
	ClientStorage  StorageFlags = driver.CLIENT_STORAGE_BIT
)

// Buffer is a GL buffer object with immutable storage.
type Buffer struct {
	object
	size int
}

// NewBuffer creates a buffer object. It has no storage until CreateStorage.
func NewBuffer(d driver.Driver) *Buffer {
	return &Buffer{object: newObject(d, driver.BUFFER, d.CreateBuffer(), d.DeleteBuffer)}
}

// Move transfers ownership to a new Buffer; b is left empty.
func (b *Buffer) Move() *Buffer {
	m := &Buffer{object: b.object.move(), size: b.size}
	b.size = 0
	return m
}

// Assign releases b's buffer and takes ownership of src's.
func (b *Buffer) Assign(src *Buffer) {
	if b == src {
		return
	}
	b.object.assign(&src.object)
	b.size, src.size = src.size, 0
}

// CreateStorage allocates size bytes of storage, initialised from data when
// data is not nil. Storage can be allocated once per buffer.
func (b *Buffer) CreateStorage(size int, data []byte, flags StorageFlags) {
	b.d.NamedBufferStorage(b.ID(), size, data, uint32(flags))
	b.size = size
}

// SetSubData overwrites part of the storage starting at offset. Uploads need
// DynamicStorage and must stay inside the allocated size.
func (b *Buffer) SetSubData(offset int, data []byte) {
	b.d.NamedBufferSubData(b.ID(), offset, data)
}

// Size is the number of bytes passed to CreateStorage.
func (b *Buffer) Size() int { return b.size }

// Bind binds the buffer to target.
func (b *Buffer) Bind(target BufferTarget) {
	b.d.BindBuffer(uint32(target), b.ID())
}

// BindBase binds the buffer to an indexed target such as
// ShaderStorageBuffer or UniformBuffer.
func (b *Buffer) BindBase(target BufferTarget, index uint32) {
	b.d.BindBufferBase(uint32(target), index, b.ID())
}

// Map maps length bytes starting at offset into client memory. The slice is
// only valid until Unmap.
func (b *Buffer) Map(offset, length int, access StorageFlags) []byte {
	return b.d.MapNamedBufferRange(b.ID(), offset, length, uint32(access))
}

// Unmap releases the mapping made by Map. It reports false if the buffer
// contents became corrupt while mapped.
func (b *Buffer) Unmap() bool {
	return b.d.UnmapNamedBuffer(b.ID())
}

// CopySubData copies size bytes from src at readOffset into dst at
// writeOffset on the GPU.
func CopySubData(src, dst *Buffer, readOffset, writeOffset, size int) {
	src.d.CopyNamedBufferSubData(src.ID(), dst.ID(), readOffset, writeOffset, size)
}

// Bytes reinterprets a slice of fixed-size values as its raw bytes without
// copying. T must not contain pointers.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// StoreSlice allocates storage sized to hold s and fills it with s.
func StoreSlice[T any](b *Buffer, s []T, flags StorageFlags) {
	data := Bytes(s)
	b.CreateStorage(len(data), data, flags)
}

// UpdateSlice writes s into the buffer starting at byte offset.
func UpdateSlice[T any](b *Buffer, s []T, offset int) {
	b.SetSubData(offset, Bytes(s))
}
