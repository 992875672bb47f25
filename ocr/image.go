package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// NormalizeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image and
// re-encodes it as PNG, the format Tesseract handles most reliably. It also
// returns the image dimensions.
func NormalizeImage(data []byte) ([]byte, image.Point, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("failed to decode image: %w", err)
	}

	size := img.Bounds().Size()
	if format == "png" {
		return data, size, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, image.Point{}, fmt.Errorf("failed to encode %s as PNG: %w", format, err)
	}
	return buf.Bytes(), size, nil
}
