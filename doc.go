// Package sgdreg is a small online learner for univariate linear regression
// y = weight·x + bias, trained one sample at a time with stochastic gradient
// descent.
//
// Training pairs come from free-form text lines, where any line holding
// exactly two numbers (either "." or "," as decimal separator) is one
// (input, output) pair, or directly from two equal-length slices.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/sgdreg/linear"
//	)
//
//	func main() {
//	    model := linear.NewSGDRegressor(linear.WithSeed(42))
//	    if _, err := model.Data().LoadFile("data.txt"); err != nil {
//	        log.Print(err)
//	    }
//
//	    if err := model.Train(1000, 0.01); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Input/Output pairs for x = -10, -9, ..., 10
//	    if err := model.PredictRange(-10, 10, 1, 0.0001, os.Stdout); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - dataset: text extraction, the training pair store and per-epoch shuffling
//   - linear: SGDRegressor (training, prediction, text reports) and a least squares baseline
//   - metrics: Evaluation metrics (MSE, RMSE, MAE, R²)
//   - plotting: Scatter plot of the training data with the fitted line
//   - core/model: Core interfaces and training state
//   - pkg/errors: Typed errors and the warning channel
//   - pkg/log: Structured logging (slog and zerolog backends)
//   - pkg/telemetry: Prometheus collectors for training progress
//
// The cmd/sgdreg command runs the whole pipeline with flags for every knob.
//
// # Shuffling
//
// The default shuffle draws each swap partner from the whole range, which
// does not produce uniform permutations but keeps training runs comparable
// with earlier results. dataset.ShuffleUniform selects Fisher–Yates instead.
//
// # License
//
// sgdreg is released under the MIT License.
package sgdreg
