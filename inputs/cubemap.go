package inputs

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/glpp"
)

// CubeMapTexture is a cube map built from six square images.
type CubeMapTexture struct {
	texture    *glpp.TextureCubemap
	resolution [3]float32
	sampler    Sampler
}

// NewCubeMapTexture uploads faces, indexed by glpp.CubeFace, into a new cube
// map. All faces must be square and the same size.
func NewCubeMapTexture(d driver.Driver, faces [6]image.Image, sampler Sampler) (*CubeMapTexture, error) {
	var size int
	pix := make([][]byte, 6)
	for i, img := range faces {
		if img == nil {
			return nil, fmt.Errorf("input image for cube map face %v is nil", glpp.CubeFace(i))
		}
		b := img.Bounds()
		if b.Dx() != b.Dy() || b.Dx() == 0 {
			return nil, fmt.Errorf("cube map face %v is %dx%d, want a square", glpp.CubeFace(i), b.Dx(), b.Dy())
		}
		if i == 0 {
			size = b.Dx()
		} else if b.Dx() != size {
			return nil, fmt.Errorf("cube map face %v is %d wide, want %d", glpp.CubeFace(i), b.Dx(), size)
		}
		rgba := toRGBA(img)
		if sampler.VFlip {
			rgba = vflip(rgba)
		}
		pix[i] = rgba.Pix
	}

	Logger().Debug("uploading cube map", zap.Int("size", size), zap.Uint32("internal_format", internalFormat))

	tex := glpp.NewTextureCubemap(d)
	tex.CreateStorage(mipLevels(sampler.Filter, size, size), internalFormat, int32(size))
	for i, p := range pix {
		tex.SetSubImage(0, 0, 0, glpp.CubeFace(i), int32(size), int32(size), driver.RGBA, driver.UNSIGNED_BYTE, p)
	}

	wrap := getWrapMode(sampler.Wrap)
	tex.SetWraps(wrap, wrap, wrap)
	minFilter, magFilter := getFilterMode(sampler.Filter)
	tex.SetFilters(minFilter, magFilter)
	if sampler.Filter == "mipmap" {
		tex.GenerateMipmap()
	}

	return &CubeMapTexture{
		texture:    tex,
		resolution: [3]float32{float32(size), float32(size), 1.0},
		sampler:    sampler,
	}, nil
}

// Texture returns the underlying texture.
func (c *CubeMapTexture) Texture() *glpp.TextureCubemap { return c.texture }
func (c *CubeMapTexture) BindUnit(unit uint32)          { c.texture.BindUnit(unit) }
func (c *CubeMapTexture) Resolution() [3]float32        { return c.resolution }
func (c *CubeMapTexture) SamplerType() string           { return "samplerCube" }
func (c *CubeMapTexture) Destroy()                      { c.texture.Destroy() }
