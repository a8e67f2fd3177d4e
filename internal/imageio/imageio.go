// Package imageio owns the raster boundary of the pipeline: decoding
// arbitrary image files into normalized grayscale grids and writing
// grids back out as 8-bit grayscale PNGs for inspection.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	// Register decoders for the formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/inkline-data/sketch.trace/internal/vision/v1raster"
)

// DecodeGray reads an image file and converts it to a grayscale grid
// with intensities normalized into [0,1]. Color images are collapsed
// through the standard luminance weights of color.GrayModel.
func DecodeGray(path string) (*v1raster.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	grid := v1raster.NewGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			grid.Set(x, y, float64(gray.Y)/255.0)
		}
	}
	return grid, nil
}

// WriteGrayPNG serializes a grid as an 8-bit grayscale PNG. Values
// are clamped into [0,1] before quantizing, so derived grids whose
// magnitudes exceed 1 still produce a readable dump.
func WriteGrayPNG(g *v1raster.Grid, path string) error {
	img := image.NewGray(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v * 255)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
