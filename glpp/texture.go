package glpp

import (
	"fmt"

	"github.com/richinsley/goglpp/driver"
)

// TextureFilter is a minification or magnification filter.
type TextureFilter int32

const (
	Nearest              TextureFilter = driver.NEAREST
	Linear               TextureFilter = driver.LINEAR
	NearestMipmapNearest TextureFilter = driver.NEAREST_MIPMAP_NEAREST
	LinearMipmapNearest  TextureFilter = driver.LINEAR_MIPMAP_NEAREST
	NearestMipmapLinear  TextureFilter = driver.NEAREST_MIPMAP_LINEAR
	LinearMipmapLinear   TextureFilter = driver.LINEAR_MIPMAP_LINEAR
)

// TextureWrap is a texture coordinate wrap mode.
type TextureWrap int32

const (
	Repeat         TextureWrap = driver.REPEAT
	ClampToEdge    TextureWrap = driver.CLAMP_TO_EDGE
	MirroredRepeat TextureWrap = driver.MIRRORED_REPEAT
)

// CubeFace selects one face of a cubemap. Faces are stored as layers in
// this order.
type CubeFace int32

const (
	CubePositiveX CubeFace = iota
	CubeNegativeX
	CubePositiveY
	CubeNegativeY
	CubePositiveZ
	CubeNegativeZ
)

func (f CubeFace) String() string {
	names := [...]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("CubeFace(%d)", int32(f))
	}
	return names[f]
}

// texture holds what every texture dimensionality shares.
type texture struct {
	object
	target uint32
}

func newTexture(d driver.Driver, target uint32) texture {
	return texture{object: newObject(d, driver.TEXTURE, d.CreateTexture(target), d.DeleteTexture), target: target}
}

func (t *texture) move() texture {
	return texture{object: t.object.move(), target: t.target}
}

// Bind binds the texture to its target on the active texture unit.
func (t *texture) Bind() {
	t.d.BindTexture(t.target, t.ID())
}

// BindUnit binds the texture to texture unit unit.
func (t *texture) BindUnit(unit uint32) {
	t.d.BindTextureUnit(unit, t.ID())
}

// GenerateMipmap fills every level below the base level.
func (t *texture) GenerateMipmap() {
	t.d.GenerateTextureMipmap(t.ID())
}

// SetFilters sets the minification and magnification filters.
func (t *texture) SetFilters(min, mag TextureFilter) {
	t.d.TextureParameteri(t.ID(), driver.TEXTURE_MIN_FILTER, int32(min))
	t.d.TextureParameteri(t.ID(), driver.TEXTURE_MAG_FILTER, int32(mag))
}

// SetParameter sets any integer texture parameter.
func (t *texture) SetParameter(pname uint32, value int32) {
	t.d.TextureParameteri(t.ID(), pname, value)
}

func (t *texture) setWraps(pnames []uint32, wraps []TextureWrap) {
	for i, w := range wraps {
		t.d.TextureParameteri(t.ID(), pnames[i], int32(w))
	}
}

// Texture1D is a one dimensional texture with immutable storage.
type Texture1D struct {
	texture
}

// NewTexture1D creates a 1D texture.
func NewTexture1D(d driver.Driver) *Texture1D {
	return &Texture1D{texture: newTexture(d, driver.TEXTURE_1D)}
}

// Move transfers ownership to a new Texture1D; t is left empty.
func (t *Texture1D) Move() *Texture1D { return &Texture1D{texture: t.texture.move()} }

// Assign releases t's texture and takes ownership of src's.
func (t *Texture1D) Assign(src *Texture1D) {
	if t != src {
		t.object.assign(&src.object)
	}
}

// CreateStorage allocates levels mipmap levels of width texels.
func (t *Texture1D) CreateStorage(levels int32, internalFormat uint32, width int32) {
	t.d.TextureStorage1D(t.ID(), levels, internalFormat, width)
}

// SetSubImage uploads width texels starting at x into level.
func (t *Texture1D) SetSubImage(level, x, width int32, format, typ uint32, pixels []byte) {
	t.d.TextureSubImage1D(t.ID(), level, x, width, format, typ, pixels)
}

// SetWraps sets the S wrap mode.
func (t *Texture1D) SetWraps(s TextureWrap) {
	t.setWraps([]uint32{driver.TEXTURE_WRAP_S}, []TextureWrap{s})
}

// Texture2D is a two dimensional texture with immutable storage.
type Texture2D struct {
	texture
}

// NewTexture2D creates a 2D texture.
func NewTexture2D(d driver.Driver) *Texture2D {
	return &Texture2D{texture: newTexture(d, driver.TEXTURE_2D)}
}

// Move transfers ownership to a new Texture2D; t is left empty.
func (t *Texture2D) Move() *Texture2D { return &Texture2D{texture: t.texture.move()} }

// Assign releases t's texture and takes ownership of src's.
func (t *Texture2D) Assign(src *Texture2D) {
	if t != src {
		t.object.assign(&src.object)
	}
}

// CreateStorage allocates levels mipmap levels of width x height texels.
func (t *Texture2D) CreateStorage(levels int32, internalFormat uint32, width, height int32) {
	t.d.TextureStorage2D(t.ID(), levels, internalFormat, width, height)
}

// SetSubImage uploads a width x height rectangle at (x, y) into level.
func (t *Texture2D) SetSubImage(level, x, y, width, height int32, format, typ uint32, pixels []byte) {
	t.d.TextureSubImage2D(t.ID(), level, x, y, width, height, format, typ, pixels)
}

// SetWraps sets the S and T wrap modes.
func (t *Texture2D) SetWraps(s, tw TextureWrap) {
	t.setWraps([]uint32{driver.TEXTURE_WRAP_S, driver.TEXTURE_WRAP_T}, []TextureWrap{s, tw})
}

// TextureCubemap is a cube map texture with square faces.
type TextureCubemap struct {
	texture
}

// NewTextureCubemap creates a cube map texture.
func NewTextureCubemap(d driver.Driver) *TextureCubemap {
	return &TextureCubemap{texture: newTexture(d, driver.TEXTURE_CUBE_MAP)}
}

// Move transfers ownership to a new TextureCubemap; t is left empty.
func (t *TextureCubemap) Move() *TextureCubemap {
	return &TextureCubemap{texture: t.texture.move()}
}

// Assign releases t's texture and takes ownership of src's.
func (t *TextureCubemap) Assign(src *TextureCubemap) {
	if t != src {
		t.object.assign(&src.object)
	}
}

// CreateStorage allocates levels mipmap levels of six size x size faces.
func (t *TextureCubemap) CreateStorage(levels int32, internalFormat uint32, size int32) {
	t.d.TextureStorage2D(t.ID(), levels, internalFormat, size, size)
}

// SetSubImage uploads a width x height rectangle at (x, y) into one face of
// level.
func (t *TextureCubemap) SetSubImage(level, x, y int32, face CubeFace, width, height int32, format, typ uint32, pixels []byte) {
	t.d.TextureSubImage3D(t.ID(), level, x, y, int32(face), width, height, 1, format, typ, pixels)
}

// SetWraps sets the S, T and R wrap modes.
func (t *TextureCubemap) SetWraps(s, tw, r TextureWrap) {
	t.setWraps([]uint32{driver.TEXTURE_WRAP_S, driver.TEXTURE_WRAP_T, driver.TEXTURE_WRAP_R}, []TextureWrap{s, tw, r})
}
