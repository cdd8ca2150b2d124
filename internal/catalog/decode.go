package catalog

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
)

// DecodeSample decodes a sample image from r. BMP support comes from
// golang.org/x/image/bmp (grounded on gogpu-gg's use of the x/image
// module); PNG/JPEG/GIF are registered via the stdlib image/* blank
// imports, matching the common Go idiom of side-effect decoder
// registration rather than a hand-rolled format switch.
func DecodeSample(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}
