package face

import (
	"bytes"
	"encoding/gob"
	"image"
	"math"

	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"github.com/google/uuid"
)

const (
	lbphRadius    = 1
	lbphNeighbors = 8
	lbphGridX     = 8
	lbphGridY     = 8
	lbphBins      = 1 << lbphNeighbors

	modelVersion = 1
)

// neighbour offsets clockwise from the top-left corner
var lbpOffsets = [lbphNeighbors]image.Point{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// lbphModel is the persisted form of a trained recognizer.
type lbphModel struct {
	Version    int
	Label      uuid.UUID
	Radius     int
	Neighbors  int
	GridX      int
	GridY      int
	Histograms [][]float64
}

// LBPH is a local binary pattern histogram recognizer.
// Distances are chi-square, so lower is closer and 0 is identical.
type LBPH struct{}

func NewLBPH() service.FaceRecognizer {
	return &LBPH{}
}

func (r *LBPH) Train(label uuid.UUID, faces []*image.Gray) ([]byte, error) {
	if len(faces) == 0 {
		return nil, errors.New("no faces to train")
	}

	m := lbphModel{
		Version:    modelVersion,
		Label:      label,
		Radius:     lbphRadius,
		Neighbors:  lbphNeighbors,
		GridX:      lbphGridX,
		GridY:      lbphGridY,
		Histograms: make([][]float64, 0, len(faces)),
	}
	for _, f := range faces {
		m.Histograms = append(m.Histograms, spatialHistogram(lbp(f)))
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&m); err != nil {
		return nil, errors.Wrap(err, "encode lbph model")
	}

	return buf.Bytes(), nil
}

func (r *LBPH) Predict(model []byte, probe *image.Gray) (uuid.UUID, float64, error) {
	var m lbphModel
	if err := gob.NewDecoder(bytes.NewReader(model)).Decode(&m); err != nil {
		return uuid.Nil, 0, errors.Wrapf(service.ErrInvalidModel, "decode: %v", err)
	}
	if m.Version != modelVersion || len(m.Histograms) == 0 {
		return uuid.Nil, 0, errors.Wrapf(service.ErrInvalidModel, "version %d with %d histograms", m.Version, len(m.Histograms))
	}

	query := spatialHistogram(lbp(probe))

	best := math.MaxFloat64
	for _, h := range m.Histograms {
		if d := chiSquare(h, query); d < best {
			best = d
		}
	}

	return m.Label, best, nil
}

// lbp computes the radius-1, 8-neighbour pattern image. Border pixels are dropped.
func lbp(src *image.Gray) *image.Gray {
	b := src.Rect
	w, h := b.Dx()-2*lbphRadius, b.Dy()-2*lbphRadius
	if w <= 0 || h <= 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := b.Min.X+x+lbphRadius, b.Min.Y+y+lbphRadius
			center := src.GrayAt(cx, cy).Y

			var code uint8
			for i, off := range lbpOffsets {
				if src.GrayAt(cx+off.X, cy+off.Y).Y >= center {
					code |= 1 << (lbphNeighbors - 1 - i)
				}
			}
			dst.Pix[y*dst.Stride+x] = code
		}
	}

	return dst
}

// spatialHistogram splits the pattern image into a grid and concatenates
// each cell's histogram normalized by the cell's pixel count.
func spatialHistogram(codes *image.Gray) []float64 {
	out := make([]float64, lbphGridX*lbphGridY*lbphBins)
	w, h := codes.Rect.Dx(), codes.Rect.Dy()
	cellW, cellH := w/lbphGridX, h/lbphGridY
	if cellW == 0 || cellH == 0 {
		return out
	}

	for gy := 0; gy < lbphGridY; gy++ {
		for gx := 0; gx < lbphGridX; gx++ {
			hist := out[(gy*lbphGridX+gx)*lbphBins : (gy*lbphGridX+gx+1)*lbphBins]
			for y := gy * cellH; y < (gy+1)*cellH; y++ {
				for x := gx * cellW; x < (gx+1)*cellW; x++ {
					hist[codes.Pix[y*codes.Stride+x]]++
				}
			}

			total := float64(cellW * cellH)
			for i := range hist {
				hist[i] /= total
			}
		}
	}

	return out
}

// chiSquare is the symmetric form 2 * sum((a-b)^2 / (a+b)).
func chiSquare(a, b []float64) float64 {
	var sum float64
	for i := range a {
		if s := a[i] + b[i]; s > 0 {
			d := a[i] - b[i]
			sum += d * d / s
		}
	}

	return 2 * sum
}
