package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestSaveFit(t *testing.T) {
	d := dataset.New()
	require.NoError(t, d.IngestArrays([]float64{-2, -1, 0, 1, 2}, []float64{-1, 1, 3, 5, 7}))

	for _, name := range []string{"fit.png", "fit.svg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			err := SaveFit(path, d, func(x float64) float64 { return 2*x + 3 },
				WithTitle("y = 2x + 3"), WithSize(3*vg.Inch, 2*vg.Inch))
			require.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestSaveFit_ScatterOnlyWithConstantInput(t *testing.T) {
	d := dataset.New()
	require.NoError(t, d.IngestArrays([]float64{1, 1}, []float64{2, 3}))

	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, SaveFit(path, d, nil))
	assert.FileExists(t, path)
}

func TestSaveFit_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := SaveFit(path, dataset.New(), nil)

	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
	assert.NoFileExists(t, path)
}

func TestSaveFit_UnsupportedFormat(t *testing.T) {
	d := dataset.New()
	require.True(t, d.IngestLine("1 2"))

	err := SaveFit(filepath.Join(t.TempDir(), "fit.bmp"), d, nil)
	assert.Error(t, err)
}
