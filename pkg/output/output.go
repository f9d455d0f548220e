// Package output encodes rendered pixel buffers to image files.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var (
	ErrUnsupportedFormat = errors.New("output: unsupported image format")
	ErrIsDirectory       = errors.New("output: path is a directory")
)

// jpegQuality is used for .jpg and .jpeg output
const jpegQuality = 95

type encoder func(w io.Writer, img image.Image) error

var encoders = map[string]encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Formats returns the supported file extensions
func Formats() []string {
	return []string{".bmp", ".jpeg", ".jpg", ".png", ".tif", ".tiff"}
}

// Validate checks that path can be used as an output file without writing it
func Validate(path string) error {
	if _, err := lookupEncoder(path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	return nil
}

// Save encodes the buffer to path using the format implied by its extension
func Save(path string, buffer *renderer.PixelBuffer) error {
	if err := Validate(path); err != nil {
		return err
	}
	encode, _ := lookupEncoder(path)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(file, buffer, encode); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// Encode writes the buffer with the given encoder
func Encode(w io.Writer, buffer *renderer.PixelBuffer, encode func(io.Writer, image.Image) error) error {
	return encode(w, buffer.Image())
}

func lookupEncoder(path string) (encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return encode, nil
}
