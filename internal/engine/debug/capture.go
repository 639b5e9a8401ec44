// Package debug writes diagnostic images of off-screen render passes.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Capture writes RGBA readbacks to numbered PNG files in a directory.
type Capture struct {
	outputDir string
	prefix    string
	seq       int
	now       func() time.Time
	create    func(name string) (io.WriteCloser, error)
}

// NewCapture creates a capture writing <prefix>_<timestamp>_<seq>.png files
// into outputDir. An empty outputDir means the working directory.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
		create:    createFile,
	}
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Dir returns the output directory.
func (c *Capture) Dir() string {
	return c.outputDir
}

// WritePixels encodes a GL readback as PNG and returns the file path.
// pixels are RGBA rows with the bottom row first, width*height*4 bytes;
// the image is flipped so the file has the usual top-left origin.
func (c *Capture) WritePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	filename := c.nextFilename()
	file, err := c.create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}

// nextFilename numbers files so two captures within one second do not collide.
func (c *Capture) nextFilename() string {
	c.seq++
	name := fmt.Sprintf("%s_%s_%03d.png", c.prefix, c.now().Format("2006-01-02_15-04-05"), c.seq)
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}
