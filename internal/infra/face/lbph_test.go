package face

import (
	"image"
	"testing"

	"votegate/internal/domain/service"
	"votegate/internal/errors"
	"votegate/internal/infra/face/facetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizedGradient(t *testing.T, o facetest.Orientation) *image.Gray {
	t.Helper()

	p := newTestProcessor()
	src := facetest.Gradient(200, 200, image.Rect(0, 0, 200, 200), o)

	return p.Normalize(src, entity200())
}

func TestLBPH_OwnImageMatchesExactly(t *testing.T) {
	rec := NewLBPH()
	label := uuid.New()
	face := normalizedGradient(t, facetest.Horizontal)

	model, err := rec.Train(label, []*image.Gray{face, face, face, face, face})
	require.NoError(t, err)

	predicted, distance, err := rec.Predict(model, face)
	require.NoError(t, err)
	assert.Equal(t, label, predicted)
	assert.InDelta(t, 0.0, distance, 1e-9)
}

func TestLBPH_DifferentTextureIsFar(t *testing.T) {
	rec := NewLBPH()
	model, err := rec.Train(uuid.New(), []*image.Gray{normalizedGradient(t, facetest.Horizontal)})
	require.NoError(t, err)

	_, distance, err := rec.Predict(model, normalizedGradient(t, facetest.Vertical))
	require.NoError(t, err)
	assert.Greater(t, distance, 100.0)
}

func TestLBPH_Errors(t *testing.T) {
	rec := NewLBPH()

	_, err := rec.Train(uuid.New(), nil)
	assert.Error(t, err)

	_, _, err = rec.Predict([]byte("garbage"), normalizedGradient(t, facetest.Horizontal))
	assert.True(t, errors.Is(err, service.ErrInvalidModel))
}

func TestChiSquare(t *testing.T) {
	assert.InDelta(t, 0.0, chiSquare([]float64{0.5, 0.5}, []float64{0.5, 0.5}), 1e-12)
	assert.InDelta(t, 4.0, chiSquare([]float64{1, 0}, []float64{0, 1}), 1e-12)
}
