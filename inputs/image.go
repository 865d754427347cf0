package inputs

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/glpp"
)

// ImageTexture is a static image uploaded into a 2D texture.
type ImageTexture struct {
	texture    *glpp.Texture2D
	resolution [3]float32
	sampler    Sampler
}

// NewImageTexture uploads img into a new 2D texture configured by sampler.
func NewImageTexture(d driver.Driver, img image.Image, sampler Sampler) (*ImageTexture, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	rgba := toRGBA(img)
	if sampler.VFlip {
		rgba = vflip(rgba)
	}
	width, height := rgba.Rect.Dx(), rgba.Rect.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("input image is empty")
	}

	Logger().Debug("uploading image texture",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Uint32("internal_format", internalFormat))

	tex := glpp.NewTexture2D(d)
	tex.CreateStorage(mipLevels(sampler.Filter, width, height), internalFormat, int32(width), int32(height))
	tex.SetSubImage(0, 0, 0, int32(width), int32(height), driver.RGBA, driver.UNSIGNED_BYTE, rgba.Pix)

	wrap := getWrapMode(sampler.Wrap)
	tex.SetWraps(wrap, wrap)
	minFilter, magFilter := getFilterMode(sampler.Filter)
	tex.SetFilters(minFilter, magFilter)
	if sampler.Filter == "mipmap" {
		tex.GenerateMipmap()
	}

	return &ImageTexture{
		texture:    tex,
		resolution: [3]float32{float32(width), float32(height), 1.0},
		sampler:    sampler,
	}, nil
}

// Texture returns the underlying texture.
func (c *ImageTexture) Texture() *glpp.Texture2D { return c.texture }
func (c *ImageTexture) BindUnit(unit uint32)     { c.texture.BindUnit(unit) }
func (c *ImageTexture) Resolution() [3]float32   { return c.resolution }
func (c *ImageTexture) SamplerType() string      { return "sampler2D" }
func (c *ImageTexture) Destroy()                 { c.texture.Destroy() }
