package linear

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

// DefaultLogEvery はエポック統計をデバッグログに出す間隔の既定値
const DefaultLogEvery = 100

// Option is a function that configures SGDRegressor
type Option func(*SGDRegressor)

// WithRandomSource sets the index source used by the per-epoch shuffle
func WithRandomSource(src dataset.IndexSource) Option {
	return func(r *SGDRegressor) {
		r.rng = src
	}
}

// WithSeed seeds a PCG source so that training is reproducible
func WithSeed(seed uint64) Option {
	return func(r *SGDRegressor) {
		r.rng = rand.New(rand.NewPCG(seed, seed))
		r.seed = &seed
	}
}

// WithShuffleMode sets how the order permutation is shuffled every epoch
func WithShuffleMode(mode dataset.ShuffleMode) Option {
	return func(r *SGDRegressor) {
		r.shuffle = mode
	}
}

// WithLogger sets the logger
func WithLogger(l log.Logger) Option {
	return func(r *SGDRegressor) {
		r.logger = l
	}
}

// WithObserver registers an observer that receives per-epoch statistics
func WithObserver(o TrainingObserver) Option {
	return func(r *SGDRegressor) {
		r.observer = o
	}
}

// WithLogEvery sets the epoch interval for debug logging. 0 disables it
func WithLogEvery(n int) Option {
	return func(r *SGDRegressor) {
		r.logEvery = n
	}
}

// WithDataset uses d as the training data instead of a fresh dataset
func WithDataset(d *dataset.Dataset) Option {
	return func(r *SGDRegressor) {
		r.data = d
	}
}
