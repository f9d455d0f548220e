package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func testBuffer() *renderer.PixelBuffer {
	buffer := renderer.NewPixelBuffer(3, 2)
	for i := range buffer.Pix {
		buffer.Pix[i] = color.RGBA{0, 0, 0, 255}
	}
	buffer.Set(0, 0, color.RGBA{255, 0, 0, 255})
	buffer.Set(2, 1, color.RGBA{0, 0, 255, 255})
	return buffer
}

func TestSave_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file     string
		decode   func(*os.File) (image.Image, error)
		lossless bool
	}{
		{"out.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }, true},
		{"out.BMP", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }, true},
		{"out.tiff", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }, true},
		{"out.tif", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }, true},
		{"out.jpg", nil, false},
		{"out.jpeg", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := Save(path, testBuffer()); err != nil {
				t.Fatalf("Failed to save: %v", err)
			}

			info, err := os.Stat(path)
			if err != nil || info.Size() == 0 {
				t.Fatalf("Expected non-empty file, got %v", err)
			}
			if !tt.lossless {
				return
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("Failed to open output: %v", err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("Failed to decode output: %v", err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Errorf("Expected 3x2 image, got %v", img.Bounds())
			}
			r, g, b, _ := img.At(0, 0).RGBA()
			if r>>8 != 255 || g != 0 || b != 0 {
				t.Errorf("Expected red top-left pixel, got %d %d %d", r>>8, g>>8, b>>8)
			}
			r, g, b, _ = img.At(2, 1).RGBA()
			if r != 0 || g != 0 || b>>8 != 255 {
				t.Errorf("Expected blue bottom-right pixel, got %d %d %d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestSave_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := Save(filepath.Join(dir, "out.gif"), testBuffer()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if err := Save(filepath.Join(dir, "noext"), testBuffer()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	sub := filepath.Join(dir, "render.png")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := Save(sub, testBuffer()); !errors.Is(err, ErrIsDirectory) {
		t.Errorf("Expected ErrIsDirectory, got %v", err)
	}

	if err := Save(filepath.Join(dir, "missing", "out.png"), testBuffer()); err == nil {
		t.Error("Expected error for missing parent directory")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testBuffer(), png.Encode); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Errorf("Expected width 3, got %d", img.Bounds().Dx())
	}
}

func TestFormats(t *testing.T) {
	for _, ext := range Formats() {
		if err := Validate("render" + ext); err != nil {
			t.Errorf("Expected %s to be supported: %v", ext, err)
		}
	}
}
