// Package facetest builds synthetic images with predictable local binary patterns.
package facetest

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
)

// Orientation selects the gradient direction drawn inside the face region.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Gradient draws a strictly increasing gradient over region and mid-gray elsewhere.
// Every column (or row) of the region gets a distinct level, so histogram
// equalization keeps the ordering and each interior LBP code is identical.
func Gradient(width, height int, region image.Rectangle, o Orientation) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}

	span := region.Dx()
	if o == Vertical {
		span = region.Dy()
	}
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			step := x - region.Min.X
			if o == Vertical {
				step = y - region.Min.Y
			}
			img.SetGray(x, y, color.Gray{Y: uint8(step * 255 / max(span-1, 1))})
		}
	}

	return img
}

// EncodeBase64PNG renders img as a base64 PNG payload.
func EncodeBase64PNG(img image.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
