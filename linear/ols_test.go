package linear

import (
	"testing"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinaryLeastSquares(t *testing.T) {
	d := dataset.New()
	require.NoError(t, d.IngestArrays([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}))

	w, b, err := OrdinaryLeastSquares(d)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-10)
	assert.InDelta(t, 1.0, b, 1e-10)
}

func TestOrdinaryLeastSquares_MatchesSGD(t *testing.T) {
	r, _ := newTestRegressor(t)
	xs, ys := linearData()
	require.NoError(t, r.Data().IngestArrays(xs, ys))
	require.NoError(t, r.Train(1000, 0.01))

	w, b, err := OrdinaryLeastSquares(r.Data())
	require.NoError(t, err)
	assert.InDelta(t, w, r.Weight(), 0.05)
	assert.InDelta(t, b, r.Bias(), 0.05)
}

func TestOrdinaryLeastSquares_Errors(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"empty", nil, nil},
		{"single sample", []float64{1}, []float64{2}},
		{"constant inputs", []float64{3, 3, 3}, []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dataset.New()
			require.NoError(t, d.IngestArrays(tt.xs, tt.ys))
			_, _, err := OrdinaryLeastSquares(d)
			assert.Error(t, err)
		})
	}

	_, _, err := OrdinaryLeastSquares(dataset.New())
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}
