// Package telemetry はSGD学習の進捗をPrometheusのメトリクスとして公開する
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/YuminosukeSato/sgdreg/linear"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
)

const namespace = "sgdreg"

var _ linear.TrainingObserver = (*TrainingMetrics)(nil)

// TrainingMetrics はエポック統計をPrometheusのコレクタに反映する
type TrainingMetrics struct {
	Epochs  *prometheus.CounterVec
	Updates *prometheus.CounterVec
	Loss    *prometheus.GaugeVec
	Weight  *prometheus.GaugeVec
	Bias    *prometheus.GaugeVec
}

// NewTrainingMetrics はコレクタを作成してregに登録する
func NewTrainingMetrics(reg prometheus.Registerer) (*TrainingMetrics, error) {
	labels := []string{"model"}
	m := &TrainingMetrics{
		Epochs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "epochs_total",
			Help:      "Number of completed training epochs.",
		}, labels),
		Updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_updates_total",
			Help:      "Number of single-sample parameter updates.",
		}, labels),
		Loss: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "epoch_loss",
			Help:      "Mean squared pre-update error of the last epoch.",
		}, labels),
		Weight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "weight",
			Help:      "Current slope.",
		}, labels),
		Bias: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bias",
			Help:      "Current intercept.",
		}, labels),
	}

	for _, c := range []prometheus.Collector{m.Epochs, m.Updates, m.Loss, m.Weight, m.Bias} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register training metrics")
		}
	}
	return m, nil
}

// ObserveEpoch implements linear.TrainingObserver.
func (m *TrainingMetrics) ObserveEpoch(s linear.EpochStats) {
	m.Epochs.WithLabelValues(s.ModelID).Inc()
	m.Updates.WithLabelValues(s.ModelID).Add(float64(s.Samples))
	m.Loss.WithLabelValues(s.ModelID).Set(s.Loss)
	m.Weight.WithLabelValues(s.ModelID).Set(s.Weight)
	m.Bias.WithLabelValues(s.ModelID).Set(s.Bias)
}

// WriteTextfile はgの内容をnode exporterのtextfile形式でpathに書き出す
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}
