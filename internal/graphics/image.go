package graphics

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"swwall/internal/raster"
)

// FillRGBA copies packed pixels into dst, which must match the canvas size.
// Alpha is always opaque.
func FillRGBA(dst *image.RGBA, pix []raster.Color, width, height int) error {
	b := dst.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("graphics: image is %dx%d, canvas is %dx%d", b.Dx(), b.Dy(), width, height)
	}
	if len(pix) != width*height {
		return fmt.Errorf("graphics: %d pixels for a %dx%d canvas", len(pix), width, height)
	}

	for y := 0; y < height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		src := pix[y*width : (y+1)*width]
		for x, c := range src {
			r, g, bl := c.RGB()
			o := x * 4
			row[o] = r
			row[o+1] = g
			row[o+2] = bl
			row[o+3] = 0xff
		}
	}
	return nil
}

// ToRGBA converts a canvas into a new RGBA image.
func ToRGBA(cv *raster.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cv.Width(), cv.Height()))
	// sizes match by construction
	_ = FillRGBA(img, cv.Pix(), cv.Width(), cv.Height())
	return img
}

// Upscale enlarges src by an integer factor without smoothing.
func Upscale(src image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// SavePNG writes the canvas, scaled, to path. Missing parent directories
// are created.
func SavePNG(cv *raster.Canvas, scale int, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("graphics: create %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphics: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, Upscale(ToRGBA(cv), scale)); err != nil {
		return fmt.Errorf("graphics: encode %s: %w", path, err)
	}
	return file.Close()
}
