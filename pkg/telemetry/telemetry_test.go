package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/sgdreg/linear"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

func TestObserveEpoch(t *testing.T) {
	m, err := NewTrainingMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveEpoch(linear.EpochStats{ModelID: "a", Epoch: 1, Samples: 4, Loss: 2.5, Weight: 1, Bias: 0.5})
	m.ObserveEpoch(linear.EpochStats{ModelID: "a", Epoch: 2, Samples: 4, Loss: 1.5, Weight: 1.5, Bias: 0.75})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Epochs.WithLabelValues("a")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.Updates.WithLabelValues("a")))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.Loss.WithLabelValues("a")))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.Weight.WithLabelValues("a")))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.Bias.WithLabelValues("a")))
}

func TestNewTrainingMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewTrainingMetrics(reg)
	require.NoError(t, err)

	_, err = NewTrainingMetrics(reg)
	assert.Error(t, err)
}

func TestTrainingMetrics_WithRegressor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewTrainingMetrics(reg)
	require.NoError(t, err)

	logger, _ := log.NewTestLogger(log.LevelError)
	r := linear.NewSGDRegressor(linear.WithSeed(3), linear.WithObserver(m), linear.WithLogger(logger))
	require.NoError(t, r.Data().IngestArrays([]float64{0, 1, 2}, []float64{1, 3, 5}))
	require.NoError(t, r.Train(20, 0.01))

	assert.Equal(t, 20.0, testutil.ToFloat64(m.Epochs.WithLabelValues(r.ID())))
	assert.Equal(t, 60.0, testutil.ToFloat64(m.Updates.WithLabelValues(r.ID())))
	assert.Equal(t, r.Weight(), testutil.ToFloat64(m.Weight.WithLabelValues(r.ID())))
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewTrainingMetrics(reg)
	require.NoError(t, err)
	m.ObserveEpoch(linear.EpochStats{ModelID: "m1", Epoch: 1, Samples: 3, Loss: 0.25})

	path := filepath.Join(t.TempDir(), "sgdreg.prom")
	require.NoError(t, WriteTextfile(path, reg))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sgdreg_epochs_total{model="m1"} 1`)
	assert.Contains(t, string(body), `sgdreg_epoch_loss{model="m1"} 0.25`)
}

func TestWriteTextfile_BadPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), prometheus.NewRegistry())
	assert.Error(t, err)
}
