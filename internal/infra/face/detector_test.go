package face

import (
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"votegate/config"
	"votegate/internal/domain/entity"
	"votegate/internal/domain/service"

	pigo "github.com/esimov/pigo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entity200() entity.FaceBox {
	return entity.FaceBox{Width: 200, Height: 200}
}

func TestNewDetector_MissingCascadeIsUnavailable(t *testing.T) {
	cfg := &config.Config{Face: &config.FaceConfig{
		Detector: config.DetectorConfig{CascadePath: filepath.Join(t.TempDir(), "facefinder")},
	}}

	det, err := NewDetector(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.False(t, det.Available())

	_, err = det.Detect(image.NewGray(image.Rect(0, 0, 10, 10)))
	assert.ErrorIs(t, err, service.ErrDetectorUnavailable)
}

func TestNewDetector_ShippedCascadeFindsFace(t *testing.T) {
	cfg := &config.Config{Face: &config.FaceConfig{
		Detector: config.DetectorConfig{
			CascadePath: filepath.Join("..", "..", "..", "config", "facefinder"),
			MinSize:     30,
			MaxSize:     1000,
			ShiftFactor: 0.1,
			ScaleFactor: 1.1,
		},
	}}

	det, err := NewDetector(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.True(t, det.Available())

	f, err := os.Open(filepath.Join("testdata", "sample.jpg"))
	require.NoError(t, err)
	defer f.Close()

	img, _, err := image.Decode(f)
	require.NoError(t, err)

	boxes, err := det.Detect(img)
	require.NoError(t, err)
	require.NotEmpty(t, boxes)

	// the portrait has one face roughly in the middle third of the frame
	best := boxes[0]
	for _, b := range boxes[1:] {
		if b.Quality > best.Quality {
			best = b
		}
	}
	centre := image.Pt(best.X+best.Width/2, best.Y+best.Height/2)
	assert.True(t, centre.In(image.Rect(80, 100, 240, 300)), "face centred at %v", centre)
	assert.GreaterOrEqual(t, best.Width, 80)
}

func TestDetectionsToBoxes(t *testing.T) {
	dets := []pigo.Detection{
		{Row: 100, Col: 100, Scale: 80, Q: 12},
		{Row: 10, Col: 10, Scale: 40, Q: 9},
		{Row: 50, Col: 50, Scale: 40, Q: 1},
	}

	boxes := detectionsToBoxes(dets, 5, 160, 160)

	require.Len(t, boxes, 2)
	assert.Equal(t, entity.FaceBox{X: 60, Y: 60, Width: 80, Height: 80, Quality: 12}, boxes[0])
	assert.Equal(t, entity.FaceBox{X: 0, Y: 0, Width: 30, Height: 30, Quality: 9}, boxes[1])
}

func TestWithDetectorDefaults(t *testing.T) {
	p := withDetectorDefaults(config.DetectorConfig{MinSize: 50})

	assert.Equal(t, 50, p.MinSize)
	assert.Equal(t, 1000, p.MaxSize)
	assert.InDelta(t, 1.1, p.ScaleFactor, 1e-9)
	assert.InDelta(t, 0.2, p.IoUThreshold, 1e-9)
}
