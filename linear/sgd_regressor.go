// Package linear は単回帰 y = weight·x + bias を確率的勾配降下法で学習するモデルを提供する
package linear

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/sgdreg/core/model"
	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/metrics"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

var _ model.Regressor = (*SGDRegressor)(nil)

// SGDRegressor はバッチサイズ1のオンライン学習を行う単回帰モデル
type SGDRegressor struct {
	state *model.StateManager

	weight float64 // 傾き
	bias   float64 // 切片

	data     *dataset.Dataset
	rng      dataset.IndexSource
	seed     *uint64
	shuffle  dataset.ShuffleMode
	observer TrainingObserver
	logEvery int

	id     string
	logger log.Logger
}

// NewSGDRegressor は重み・切片が0の新しいモデルを作成する
func NewSGDRegressor(opts ...Option) *SGDRegressor {
	r := &SGDRegressor{
		state:    model.NewStateManager(),
		shuffle:  dataset.ShuffleBiased,
		logEvery: DefaultLogEvery,
		id:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = log.GetLoggerWithName("linear.sgd")
	}
	r.logger = r.logger.With(
		log.ModelNameKey, "SGDRegressor",
		log.EstimatorIDKey, r.id,
	)
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.data == nil {
		r.data = dataset.New(dataset.WithLogger(r.logger))
	}
	return r
}

// ID はログとメトリクスのラベルに使うモデルの識別子を返す
func (r *SGDRegressor) ID() string {
	return r.id
}

// Data は訓練データを返す
func (r *SGDRegressor) Data() *dataset.Dataset {
	return r.data
}

// Weight は学習された傾きを返す
func (r *SGDRegressor) Weight() float64 {
	return r.weight
}

// Bias は学習された切片を返す
func (r *SGDRegressor) Bias() float64 {
	return r.bias
}

// SetCoefficients は傾きと切片を直接設定する
func (r *SGDRegressor) SetCoefficients(weight, bias float64) {
	r.weight = weight
	r.bias = bias
}

// IsFitted は1サンプル以上で1エポック以上学習したかを返す
func (r *SGDRegressor) IsFitted() bool {
	return r.state.IsFitted()
}

// State は学習状態のスナップショットを返す
func (r *SGDRegressor) State() model.ModelState {
	return r.state.GetState()
}

// Reset は係数を0に戻し、訓練データと学習状態を消去する
func (r *SGDRegressor) Reset() {
	r.weight, r.bias = 0, 0
	r.data.Reset()
	r.state.Reset()
}

// Predict は weight·x + bias を返す
func (r *SGDRegressor) Predict(x float64) float64 {
	return r.weight*x + r.bias
}

// Train は指定エポック数・学習率で学習する
//
// 各エポックで学習順序をシャッフルし、順序どおりに1サンプルずつ
// 誤差 e = y - (w·x + b) を求めて w += e·lr·x, b += e·lr と更新する。
// 訓練データが空の場合は何もしない。
func (r *SGDRegressor) Train(epochs int, learningRate float64) (err error) {
	defer errors.Recover(&err, "SGDRegressor.Train")

	if epochs < 0 {
		return errors.NewValidationError("epochs", "must be non-negative", epochs)
	}
	if !errors.IsFinite(learningRate) {
		return errors.NewValidationError("learning_rate", "must be finite", learningRate)
	}

	n := r.data.Len()
	logger := r.logger.With(
		log.OperationKey, log.OperationTrain,
		log.PhaseKey, log.PhaseTraining,
	)
	if n == 0 {
		logger.Debug("no training data; skipping")
		return nil
	}

	fields := []any{
		log.SamplesKey, n,
		log.EpochsKey, epochs,
		log.LearningRateKey, learningRate,
		log.ShuffleKey, r.shuffle.String(),
	}
	if r.seed != nil {
		fields = append(fields, log.RandomSeedKey, *r.seed)
	}
	logger.Info("training started", fields...)
	start := time.Now()

	var (
		loss   float64
		warned bool
	)
	for epoch := 1; epoch <= epochs; epoch++ {
		loss = r.runEpoch(learningRate)

		stats := EpochStats{
			ModelID: r.id,
			Epoch:   epoch,
			Samples: n,
			Loss:    loss,
			Weight:  r.weight,
			Bias:    r.bias,
		}
		if r.observer != nil {
			r.observer.ObserveEpoch(stats)
		}
		if r.logEvery > 0 && (epoch%r.logEvery == 0 || epoch == epochs) {
			logger.Debug("epoch completed",
				log.EpochKey, epoch,
				log.LossKey, loss,
				log.WeightKey, r.weight,
				log.BiasKey, r.bias,
			)
		}

		if warned {
			continue
		}
		if err := errors.CheckNumericalStability("sgd_update", []float64{r.weight, r.bias}, epoch); err != nil {
			warned = true
			errors.Warn(err)
			logger.Warn("coefficients diverged",
				log.ErrorCodeKey, log.ErrorNumerical,
				log.EpochKey, epoch,
				log.SuggestionKey, "lower the learning rate",
			)
		}
	}

	r.state.RecordTraining(n, epochs)
	logger.Info("training completed",
		log.EpochsKey, epochs,
		log.LossKey, loss,
		log.WeightKey, r.weight,
		log.BiasKey, r.bias,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// runEpoch は1エポック分の更新を行い、更新前誤差の二乗平均を返す
func (r *SGDRegressor) runEpoch(learningRate float64) float64 {
	r.data.Shuffle(r.rng, r.shuffle)

	var sq float64
	r.data.EachInOrder(func(_ int, x, y float64) {
		e := y - (r.weight*x + r.bias)
		sq += e * e
		delta := e * learningRate
		r.weight += delta * x
		r.bias += delta
	})
	return sq / float64(r.data.Len())
}

// Score は訓練データに対する決定係数R²を返す
func (r *SGDRegressor) Score() (float64, error) {
	if err := r.state.RequireFitted("SGDRegressor.Score"); err != nil {
		return 0, err
	}
	yTrue, yPred := r.trainingPredictions()
	score, err := metrics.R2Score(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	r.logger.Debug("score computed",
		log.OperationKey, log.OperationScore,
		log.R2ScoreKey, score,
	)
	return score, nil
}

// Evaluate は訓練データに対する評価指標をまとめて返す
func (r *SGDRegressor) Evaluate() (metrics.Report, error) {
	if err := r.state.RequireFitted("SGDRegressor.Evaluate"); err != nil {
		return metrics.Report{}, err
	}
	yTrue, yPred := r.trainingPredictions()
	return metrics.Evaluate(yTrue, yPred)
}

func (r *SGDRegressor) trainingPredictions() (yTrue, yPred []float64) {
	xs := r.data.Inputs()
	yPred = make([]float64, len(xs))
	for i, x := range xs {
		yPred[i] = r.Predict(x)
	}
	return r.data.Outputs(), yPred
}

// ThresholdSnap は |v| < threshold のとき0を返す（表示用）
func ThresholdSnap(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
