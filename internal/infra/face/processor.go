// Package face implements detection, normalization and LBPH recognition of voter faces.
package face

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG uploads
	"image/png"
	"strings"

	"votegate/config"
	"votegate/internal/domain/entity"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	xdraw "golang.org/x/image/draw"
)

const (
	defaultFaceSize = 200

	// maxImageSide caps uploads before their pixels are allocated.
	maxImageSide = 4096
)

// Processor decodes uploads and produces equalized square grayscale crops.
type Processor struct {
	size int
}

// NewProcessor builds a processor producing size x size crops.
func NewProcessor(cfg *config.Config) service.FaceProcessor {
	size := defaultFaceSize
	if cfg != nil && cfg.Face != nil && cfg.Face.ImageSize > 0 {
		size = cfg.Face.ImageSize
	}

	return &Processor{size: size}
}

// Decode accepts raw base64 or a data URL (data:image/png;base64,...).
func (p *Processor) Decode(encoded string) (image.Image, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		_, after, ok := strings.Cut(payload, ",")
		if !ok {
			return nil, errors.Wrap(service.ErrInvalidImage, "malformed data URL")
		}
		payload = after
	}
	if payload == "" {
		return nil, errors.Wrap(service.ErrInvalidImage, "empty image")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errors.Wrap(service.ErrInvalidImage, "invalid base64")
		}
	}

	header, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidImage, "decode header: %v", err)
	}
	if header.Width <= 0 || header.Height <= 0 || header.Width > maxImageSide || header.Height > maxImageSide {
		return nil, errors.Wrapf(service.ErrInvalidImage, "image is %dx%d, sides must be within 1..%d", header.Width, header.Height, maxImageSide)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidImage, "decode: %v", err)
	}

	return img, nil
}

// Normalize crops box (clamped to the image), converts to gray, scales and equalizes.
func (p *Processor) Normalize(img image.Image, box entity.FaceBox) *image.Gray {
	bounds := img.Bounds()
	region := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height).
		Add(bounds.Min).
		Intersect(bounds)
	if region.Empty() {
		region = bounds
	}

	crop := image.NewGray(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := 0; y < region.Dy(); y++ {
		for x := 0; x < region.Dx(); x++ {
			crop.SetGray(x, y, color.GrayModel.Convert(img.At(region.Min.X+x, region.Min.Y+y)).(color.Gray))
		}
	}

	face := crop
	if crop.Rect.Dx() != p.size || crop.Rect.Dy() != p.size {
		face = image.NewGray(image.Rect(0, 0, p.size, p.size))
		xdraw.ApproxBiLinear.Scale(face, face.Rect, crop, crop.Rect, xdraw.Src, nil)
	}

	equalizeHist(face)

	return face
}

func (p *Processor) EncodePNG(face *image.Gray) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, face); err != nil {
		return nil, errors.Wrap(err, "encode face png")
	}

	return buf.Bytes(), nil
}

func (p *Processor) DecodePNG(data []byte) (*image.Gray, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidImage, "decode stored face: %v", err)
	}

	if gray, ok := img.(*image.Gray); ok {
		return gray, nil
	}

	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(gray, gray.Rect, img, b.Min, xdraw.Src)

	return gray, nil
}

// equalizeHist spreads the intensity histogram over the full range in place.
func equalizeHist(img *image.Gray) {
	var hist [256]int
	w, h := img.Rect.Dx(), img.Rect.Dy()
	total := w * h
	if total == 0 {
		return
	}

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for _, v := range row {
			hist[v]++
		}
	}

	first := 0
	for hist[first] == 0 {
		first++
	}
	if hist[first] == total {
		return
	}

	var lut [256]uint8
	scale := 255.0 / float64(total-hist[first])
	sum := 0
	for v := first + 1; v < 256; v++ {
		sum += hist[v]
		lut[v] = uint8(float64(sum)*scale + 0.5)
	}

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for i, v := range row {
			row[i] = lut[v]
		}
	}
}
