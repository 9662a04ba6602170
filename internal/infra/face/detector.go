package face

import (
	"image"
	"image/draw"
	"log/slog"
	"os"

	"votegate/config"
	"votegate/internal/domain/entity"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	pigo "github.com/esimov/pigo/core"
)

const (
	defaultMinSize      = 30
	defaultMaxSize      = 1000
	defaultShiftFactor  = 0.1
	defaultScaleFactor  = 1.1
	defaultIoUThreshold = 0.2
	defaultMinQuality   = 5.0
)

// Detector finds frontal faces with a pigo pixel-intensity cascade.
// It is safe for concurrent use; the unpacked cascade is read-only.
type Detector struct {
	classifier *pigo.Pigo
	params     config.DetectorConfig
}

// NewDetector loads the cascade named in config. A missing cascade file yields an
// unavailable detector rather than an error so the API can still report status.
func NewDetector(cfg *config.Config, logger *slog.Logger) (service.FaceDetector, error) {
	var params config.DetectorConfig
	if cfg != nil && cfg.Face != nil {
		params = cfg.Face.Detector
	}

	if params.CascadePath == "" {
		logger.Warn("Face detector cascade not configured")

		return &Detector{params: withDetectorDefaults(params)}, nil
	}

	cascade, err := os.ReadFile(params.CascadePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Error("Face detector cascade not found, face endpoints will be unavailable", slog.String("path", params.CascadePath))

			return &Detector{params: withDetectorDefaults(params)}, nil
		}

		return nil, errors.Wrap(err, "read face cascade")
	}

	return NewDetectorFromCascade(cascade, params)
}

// NewDetectorFromCascade unpacks a binary pigo cascade.
func NewDetectorFromCascade(cascade []byte, params config.DetectorConfig) (*Detector, error) {
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, errors.Wrap(err, "unpack face cascade")
	}

	return &Detector{classifier: classifier, params: withDetectorDefaults(params)}, nil
}

func (d *Detector) Available() bool {
	return d.classifier != nil
}

func (d *Detector) Detect(img image.Image) ([]entity.FaceBox, error) {
	if d.classifier == nil {
		return nil, service.ErrDetectorUnavailable
	}

	src := toOrigin(img)
	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()

	dets := d.classifier.RunCascade(pigo.CascadeParams{
		MinSize:     d.params.MinSize,
		MaxSize:     min(d.params.MaxSize, max(cols, rows)),
		ShiftFactor: d.params.ShiftFactor,
		ScaleFactor: d.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}, 0.0)
	dets = d.classifier.ClusterDetections(dets, d.params.IoUThreshold)

	return detectionsToBoxes(dets, d.params.MinQuality, cols, rows), nil
}

// detectionsToBoxes keeps confident detections and converts centre/scale to clamped rectangles.
func detectionsToBoxes(dets []pigo.Detection, minQuality float64, cols, rows int) []entity.FaceBox {
	boxes := make([]entity.FaceBox, 0, len(dets))
	frame := image.Rect(0, 0, cols, rows)

	for _, det := range dets {
		if float64(det.Q) < minQuality {
			continue
		}

		half := det.Scale / 2
		rect := image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half).Intersect(frame)
		if rect.Empty() {
			continue
		}

		boxes = append(boxes, entity.FaceBox{
			X:       rect.Min.X,
			Y:       rect.Min.Y,
			Width:   rect.Dx(),
			Height:  rect.Dy(),
			Quality: float64(det.Q),
		})
	}

	return boxes
}

// toOrigin returns img re-based at (0,0), which pigo assumes.
func toOrigin(img image.Image) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst
}

func withDetectorDefaults(p config.DetectorConfig) config.DetectorConfig {
	if p.MinSize <= 0 {
		p.MinSize = defaultMinSize
	}
	if p.MaxSize <= 0 {
		p.MaxSize = defaultMaxSize
	}
	if p.ShiftFactor <= 0 {
		p.ShiftFactor = defaultShiftFactor
	}
	if p.ScaleFactor <= 1 {
		p.ScaleFactor = defaultScaleFactor
	}
	if p.IoUThreshold <= 0 {
		p.IoUThreshold = defaultIoUThreshold
	}
	if p.MinQuality <= 0 {
		p.MinQuality = defaultMinQuality
	}

	return p
}
