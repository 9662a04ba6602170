package face

import (
	"image"
	"image/color"
	"testing"

	"votegate/config"
	"votegate/internal/domain/entity"
	"votegate/internal/domain/service"
	"votegate/internal/errors"
	"votegate/internal/infra/face/facetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor() *Processor {
	cfg := &config.Config{Face: &config.FaceConfig{ImageSize: 200}}

	return NewProcessor(cfg).(*Processor)
}

func TestProcessor_Decode(t *testing.T) {
	p := newTestProcessor()
	img := facetest.Gradient(40, 30, image.Rect(0, 0, 40, 30), facetest.Horizontal)
	payload := facetest.EncodeBase64PNG(img)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"raw base64", payload, false},
		{"data url", "data:image/png;base64," + payload, false},
		{"empty", "", true},
		{"not base64", "%%%", true},
		{"not an image", "aGVsbG8gd29ybGQ=", true},
		{"data url without comma", "data:image/png;base64", true},
		{"wider than allowed", facetest.EncodeBase64PNG(image.NewGray(image.Rect(0, 0, maxImageSide+1, 1))), true},
		{"taller than allowed", facetest.EncodeBase64PNG(image.NewGray(image.Rect(0, 0, 1, maxImageSide+1))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := p.Decode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, service.ErrInvalidImage))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 40, decoded.Bounds().Dx())
			assert.Equal(t, 30, decoded.Bounds().Dy())
		})
	}
}

func TestProcessor_NormalizeProducesEqualizedSquare(t *testing.T) {
	p := newTestProcessor()
	src := image.NewGray(image.Rect(0, 0, 320, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(100 + x%20)})
		}
	}

	face := p.Normalize(src, entity.FaceBox{X: 40, Y: 20, Width: 150, Height: 150})

	assert.Equal(t, image.Rect(0, 0, 200, 200), face.Rect)

	lo, hi := uint8(255), uint8(0)
	for _, v := range face.Pix {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	assert.Equal(t, uint8(0), lo)
	assert.Equal(t, uint8(255), hi)
}

func TestProcessor_NormalizeClampsBox(t *testing.T) {
	p := newTestProcessor()
	src := facetest.Gradient(100, 100, image.Rect(0, 0, 100, 100), facetest.Vertical)

	face := p.Normalize(src, entity.FaceBox{X: 80, Y: 80, Width: 60, Height: 60})

	assert.Equal(t, 200, face.Rect.Dx())
}

func TestProcessor_PNGRoundTrip(t *testing.T) {
	p := newTestProcessor()
	face := facetest.Gradient(200, 200, image.Rect(0, 0, 200, 200), facetest.Horizontal)

	data, err := p.EncodePNG(face)
	require.NoError(t, err)

	back, err := p.DecodePNG(data)
	require.NoError(t, err)
	assert.Equal(t, face.Pix, back.Pix)

	_, err = p.DecodePNG([]byte("nope"))
	assert.True(t, errors.Is(err, service.ErrInvalidImage))
}

func TestEqualizeHist_UniformImageUnchanged(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 77
	}

	equalizeHist(img)

	for _, v := range img.Pix {
		assert.Equal(t, uint8(77), v)
	}
}
