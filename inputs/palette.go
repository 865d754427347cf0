package inputs

import (
	"fmt"
	"image/color"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/glpp"
)

// PaletteTexture is a 1D color ramp, sampled with a single coordinate.
type PaletteTexture struct {
	texture    *glpp.Texture1D
	resolution [3]float32
}

// NewPaletteTexture uploads colors, in order, as the texels of a new 1D
// texture.
func NewPaletteTexture(d driver.Driver, colors []color.Color, sampler Sampler) (*PaletteTexture, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}
	pix := make([]byte, 0, len(colors)*4)
	for _, c := range colors {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		pix = append(pix, n.R, n.G, n.B, n.A)
	}

	tex := glpp.NewTexture1D(d)
	tex.CreateStorage(mipLevels(sampler.Filter, len(colors), 1), internalFormat, int32(len(colors)))
	tex.SetSubImage(0, 0, int32(len(colors)), driver.RGBA, driver.UNSIGNED_BYTE, pix)
	tex.SetWraps(getWrapMode(sampler.Wrap))
	minFilter, magFilter := getFilterMode(sampler.Filter)
	tex.SetFilters(minFilter, magFilter)
	if sampler.Filter == "mipmap" {
		tex.GenerateMipmap()
	}
	return &PaletteTexture{texture: tex, resolution: [3]float32{float32(len(colors)), 1, 1}}, nil
}

func (c *PaletteTexture) BindUnit(unit uint32)   { c.texture.BindUnit(unit) }
func (c *PaletteTexture) Resolution() [3]float32 { return c.resolution }
func (c *PaletteTexture) SamplerType() string    { return "sampler1D" }
func (c *PaletteTexture) Destroy()               { c.texture.Destroy() }
