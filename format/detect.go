// Package format provides input format detection for the shiftcal library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// VisionJSON indicates a Google Cloud Vision AnnotateImageResponse.
	VisionJSON
	// HOCR indicates Tesseract hOCR output.
	HOCR
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a TIFF image.
	TIFF
	// WebP indicates a WebP image.
	WebP
	// BMP indicates a BMP image.
	BMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case VisionJSON:
		return "VisionJSON"
	case HOCR:
		return "hOCR"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case WebP:
		return "WebP"
	case BMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case VisionJSON:
		return ".json"
	case HOCR:
		return ".hocr"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tiff"
	case WebP:
		return ".webp"
	case BMP:
		return ".bmp"
	default:
		return ""
	}
}

// IsImage reports whether the format must be recognized by OCR before
// tokens are available.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, GIF, TIFF, WebP, BMP:
		return true
	default:
		return false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return VisionJSON
	case ".hocr", ".html", ".htm":
		return HOCR
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".webp":
		return WebP
	case ".bmp":
		return BMP
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WebP
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return VisionJSON
	}
	if detectHOCRMagic(trimmed) {
		return HOCR
	}

	return Unknown
}

// detectHOCRMagic checks if the data looks like an HTML document carrying
// hOCR classes.
func detectHOCRMagic(data []byte) bool {
	if len(data) == 0 || data[0] != '<' {
		return false
	}
	head := strings.ToLower(string(data[:min(4096, len(data))]))
	return strings.Contains(head, "ocr_page") || strings.Contains(head, "ocr-system")
}

// DetectFromReader inspects the content to determine format, falling back
// to nothing but magic bytes.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 4096)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
