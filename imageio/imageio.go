// Package imageio decodes and encodes the image formats the paint
// surface loads and exports.
//
// Decode accepts PNG, JPEG, GIF, BMP, TIFF, WebP, and TGA; the format is
// sniffed from the data, never from a file extension. Encoding targets
// PNG (lossless interchange) and WebP (compact lossless export).
package imageio

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	_ "image/gif"
	_ "image/jpeg"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the data is not in any supported
// image format.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// Decode sniffs the format of encoded image data and decodes it.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	logger().Debug("image decoded",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return img, nil
}

// DecodeDataURL decodes an RFC 2397 data URL carrying a base64 image
// payload, e.g. "data:image/png;base64,....". The declared media type is
// ignored; the payload is sniffed like any other data.
func DecodeDataURL(url string) (image.Image, error) {
	const scheme = "data:"
	if !strings.HasPrefix(url, scheme) {
		return nil, errors.New("imageio: not a data URL")
	}
	meta, payload, ok := strings.Cut(url[len(scheme):], ",")
	if !ok {
		return nil, errors.New("imageio: malformed data URL")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, errors.New("imageio: data URL payload is not base64")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("imageio: data URL payload: %w", err)
	}
	return Decode(raw)
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// EncodeWebP writes the image as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("imageio: encode webp: %w", err)
	}
	return nil
}
