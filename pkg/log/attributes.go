// Package log defines standard attribute keys for training and prediction runs.
//
// Using the same keys everywhere lets log output from the dataset loader, the
// SGD trainer and the command-line driver be filtered and joined consistently.
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples").

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "SGDRegressor"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	// SGDRegressor assigns a UUID on construction.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "linear", "cmd"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of training pairs.
	SamplesKey = "data.samples"

	// SourceKey names where training data was read from (file path or "arrays").
	SourceKey = "data.source"

	// LinesKey counts text lines scanned during ingestion.
	LinesKey = "data.lines"

	// SkippedKey counts lines that did not yield exactly two numbers.
	SkippedKey = "data.skipped"

	// MalformedKey counts numeric tokens that failed to parse and were coerced to 0.
	MalformedKey = "data.malformed_tokens"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the mean squared error observed during an epoch.
	LossKey = "metrics.loss"

	// R2ScoreKey records R² coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"

	// EpochKey records the current epoch number during training.
	EpochKey = "training.epoch"

	// EpochsKey records the number of epochs requested for a training call.
	EpochsKey = "training.epochs"

	// WeightKey and BiasKey record the learned slope and intercept.
	WeightKey = "model.weight"
	BiasKey   = "model.bias"
)

// Prediction and Output Context
const (
	// PredsKey indicates the number of predictions written.
	PredsKey = "preds.count"

	// ThresholdKey records the display threshold used for zero snapping.
	ThresholdKey = "preds.threshold"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Hyperparameters and Configuration
const (
	// LearningRateKey records the learning rate for gradient-based training.
	LearningRateKey = "hyperparams.learning_rate"

	// ShuffleKey records the shuffle strategy used between epochs.
	ShuffleKey = "hyperparams.shuffle"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants for common operations.
const (
	OperationTrain        = "train"
	OperationPredict      = "predict"
	OperationPredictAll   = "predict_all"
	OperationPredictRange = "predict_range"
	OperationLoad         = "load"
	OperationIngest       = "ingest"
	OperationScore        = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"
	PhaseIngestion = "ingestion"

	ErrorResourceUnavailable = "RESOURCE_UNAVAILABLE"
	ErrorArityMismatch       = "ARITY_MISMATCH"
	ErrorInvalidInput        = "INVALID_INPUT"
	ErrorNumerical           = "NUMERICAL_INSTABILITY"
)
