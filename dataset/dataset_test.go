package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset(t *testing.T, opts ...Option) (*Dataset, *log.TestLogger) {
	t.Helper()
	logger, _ := log.NewTestLogger(log.LevelDebug)
	return New(append([]Option{WithLogger(logger)}, opts...)...), logger
}

func assertInvariant(t *testing.T, d *Dataset) {
	t.Helper()
	n := d.Len()
	require.Len(t, d.Outputs(), n)
	order := d.Order()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, k := range order {
		require.True(t, k >= 0 && k < n, "index %d out of range", k)
		require.False(t, seen[k], "index %d repeated", k)
		seen[k] = true
	}
}

func TestIngestLine(t *testing.T) {
	d, _ := newTestDataset(t)

	assert.True(t, d.IngestLine("1 3"))
	assert.True(t, d.IngestLine("2,5\t8"))
	require.Equal(t, 2, d.Len())

	x, y := d.Sample(1)
	assert.Equal(t, 2.5, x)
	assert.Equal(t, 8.0, y)
	assert.Equal(t, []int{0, 1}, d.Order())

	// 0個・1個・3個以上の行は無視される
	for _, line := range []string{"", "header", "7", "1 2 3", "1 2 3 4"} {
		assert.False(t, d.IngestLine(line), "line %q", line)
	}
	assert.Equal(t, 2, d.Len())
	assertInvariant(t, d)
}

func TestIngestLine_CommentWithTwoNumbersIsAPair(t *testing.T) {
	d, _ := newTestDataset(t)

	// コメント記号は区別されず、数値がちょうど2個の行は学習データになる
	assert.True(t, d.IngestLine("# y = 2x + 3"))
	x, y := d.Sample(0)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 3.0, y)

	assert.False(t, d.IngestLine("# linear data"))
	assert.False(t, d.IngestLine("# 1 2 3"))
	assert.Equal(t, 1, d.Len())
	assertInvariant(t, d)
}

func TestIngestLine_LogsMalformedTokens(t *testing.T) {
	d, logger := newTestDataset(t)

	assert.True(t, d.IngestLine("- 4"))
	x, _ := d.Sample(0)
	assert.Equal(t, 0.0, x)
	assert.True(t, logger.ContainsField(log.MalformedKey, 1.0))
}

func TestIngestArrays(t *testing.T) {
	d, _ := newTestDataset(t)
	require.True(t, d.IngestLine("10 20"))

	require.NoError(t, d.IngestArrays([]float64{1, 2, 3}, []float64{4, 5, 6}))

	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []float64{10, 1, 2, 3}, d.Inputs())
	assert.Equal(t, []float64{20, 4, 5, 6}, d.Outputs())
	assert.Equal(t, []int{0, 1, 2, 3}, d.Order())
	assertInvariant(t, d)

	require.NoError(t, d.IngestArrays(nil, nil))
	assert.Equal(t, 4, d.Len())
}

func TestIngestArrays_ArityMismatch(t *testing.T) {
	d, logger := newTestDataset(t)

	err := d.IngestArrays([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
	assert.Equal(t, 0, d.Len(), "dataset must be unchanged")
	assert.True(t, logger.ContainsField(log.ErrorCodeKey, log.ErrorArityMismatch))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	content := strings.Join([]string{
		"# x y",
		"0 3",
		"1 5",
		"",
		"2,5 8",
		"-1 1",
		"1 2 3",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, logger := newTestDataset(t)
	stats, err := d.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, LoadStats{Lines: 7, Pairs: 4, Skipped: 3}, stats)
	assert.Equal(t, []float64{0, 1, 2.5, -1}, d.Inputs())
	assert.Equal(t, []float64{3, 5, 8, 1}, d.Outputs())
	assertInvariant(t, d)
	assert.True(t, logger.ContainsMessage("training data loaded"))
	assert.True(t, logger.ContainsField(log.SamplesKey, 4.0))
}

func TestLoadFile_Missing(t *testing.T) {
	d, logger := newTestDataset(t)
	require.NoError(t, d.IngestArrays([]float64{1}, []float64{2}))

	stats, err := d.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var resErr *errors.ResourceError
	assert.True(t, errors.As(err, &resErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, LoadStats{}, stats)
	assert.Equal(t, 1, d.Len(), "dataset must be unchanged")
	assert.True(t, logger.ContainsField(log.ErrorCodeKey, log.ErrorResourceUnavailable))
}

func TestLoadReader_LineTooLongCommitsNothing(t *testing.T) {
	d, _ := newTestDataset(t, WithMaxLineLength(16))

	input := "1 2\n3 4\n" + strings.Repeat("9", 64) + " 1\n5 6\n"
	_, err := d.LoadReader(strings.NewReader(input))

	require.Error(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestReset(t *testing.T) {
	d, _ := newTestDataset(t)
	require.NoError(t, d.IngestArrays([]float64{1, 2}, []float64{3, 4}))

	d.Reset()
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Order())
	assert.Empty(t, d.Outputs())

	require.True(t, d.IngestLine("5 6"))
	assert.Equal(t, []int{0}, d.Order())
}

func TestEachInOrder(t *testing.T) {
	d, _ := newTestDataset(t)
	require.NoError(t, d.IngestArrays([]float64{1, 2, 3}, []float64{10, 20, 30}))
	d.Shuffle(&scriptedSource{values: []int{2, 0, 1}}, ShuffleBiased)

	var ks []int
	var ys []float64
	d.EachInOrder(func(k int, x, y float64) {
		ks = append(ks, k)
		ys = append(ys, y)
	})
	assert.Equal(t, d.Order(), ks)
	for i, k := range ks {
		assert.Equal(t, float64(k+1)*10, ys[i])
	}
}
