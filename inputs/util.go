package inputs

import (
	"image"
	"image/draw"
	"math/bits"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/glpp"
)

// Sampler holds the sampling settings of a texture input.
type Sampler struct {
	Filter string // "mipmap", "linear" or "nearest"
	Wrap   string // "repeat", "clamp" or "mirror"
	VFlip  bool   // Flip rows so the first image row ends up at t = 1
}

// Helper to convert a wrap name to a texture wrap mode.
func getWrapMode(wrap string) glpp.TextureWrap {
	switch wrap {
	case "repeat":
		return glpp.Repeat
	case "clamp":
		return glpp.ClampToEdge
	case "mirror":
		return glpp.MirroredRepeat
	default:
		return glpp.Repeat
	}
}

// Helper to convert a filter name to minification and magnification filters.
func getFilterMode(filter string) (minFilter, magFilter glpp.TextureFilter) {
	switch filter {
	case "mipmap":
		return glpp.LinearMipmapLinear, glpp.Linear
	case "linear":
		return glpp.Linear, glpp.Linear
	case "nearest":
		return glpp.Nearest, glpp.Nearest
	default:
		return glpp.Linear, glpp.Linear
	}
}

// internalFormat is the storage format of every texture input.
const internalFormat = driver.RGBA8

// mipLevels is the number of levels to allocate: the full chain down to 1x1
// for the mipmap filter, a single level otherwise.
func mipLevels(filter string, width, height int) int32 {
	if filter != "mipmap" {
		return 1
	}
	return int32(bits.Len(uint(max(width, height, 1))))
}

// toRGBA converts any image to tightly packed RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Rect.Dx()*4 && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// vflip vertically flips the provided RGBA image.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}
