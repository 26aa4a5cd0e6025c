package pdf2image

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/tiff"
)

// decodeImage decodes raw tool output as the given raster format. The
// format is explicit rather than sniffed: the caller asked the tool for
// exactly one format, and anything else is a tool failure.
func decodeImage(data []byte, f Format) (image.Image, error) {
	r := bytes.NewReader(data)
	switch f {
	case PNG:
		return png.Decode(r)
	case TIFF:
		return tiff.Decode(r)
	default:
		return jpeg.Decode(r)
	}
}
