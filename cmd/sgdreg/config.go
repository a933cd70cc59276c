package main

import (
	"flag"
	"math"
	"strconv"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

// Config captures the runtime knobs for a demo run.
type Config struct {
	DataPath     string
	Epochs       int
	LearningRate float64
	Start        float64
	End          float64
	Step         float64
	Threshold    float64
	Seed         uint64
	Seeded       bool
	Shuffle      string
	Mode         string
	LogLevel     string
	LogFormat    string
	LogEvery     int
	PlotPath     string
	MetricsFile  string
}

// DefaultConfig reproduces the fixed demo pipeline.
func DefaultConfig() Config {
	return Config{
		DataPath:     "data.txt",
		Epochs:       1000,
		LearningRate: 0.01,
		Start:        -10,
		End:          10,
		Step:         1,
		Threshold:    0.0001,
		Shuffle:      dataset.ShuffleBiased.String(),
		Mode:         "range",
		LogLevel:     "info",
		LogFormat:    "json",
		LogEvery:     100,
	}
}

// RegisterFlags binds every field to fs using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DataPath, "data", c.DataPath, "Path to the training data file")
	fs.IntVar(&c.Epochs, "epochs", c.Epochs, "Number of training epochs")
	fs.Float64Var(&c.LearningRate, "lr", c.LearningRate, "Learning rate")
	fs.Float64Var(&c.Start, "start", c.Start, "First input of the prediction range")
	fs.Float64Var(&c.End, "end", c.End, "Last input of the prediction range (inclusive)")
	fs.Float64Var(&c.Step, "step", c.Step, "Increment of the prediction range")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "Predictions with smaller magnitude are printed as 0")
	fs.Func("seed", "PRNG seed for the shuffle (random when unset)", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		c.Seed, c.Seeded = v, true
		return nil
	})
	fs.StringVar(&c.Shuffle, "shuffle", c.Shuffle, "Shuffle mode: biased, uniform or none")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Prediction mode: range or all")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: json or console")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "Log epoch statistics every N epochs (0 disables)")
	fs.StringVar(&c.PlotPath, "plot", c.PlotPath, "Write a plot of the fit to this path (.png, .svg, .pdf)")
	fs.StringVar(&c.MetricsFile, "metrics-file", c.MetricsFile, "Write Prometheus textfile metrics to this path")
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.NewValidationError("data", "must not be empty", c.DataPath)
	}
	if c.Epochs < 0 {
		return errors.NewValidationError("epochs", "must be >= 0", c.Epochs)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return errors.NewValidationError("lr", "must be finite", c.LearningRate)
	}
	if c.Mode != "range" && c.Mode != "all" {
		return errors.NewValidationError("mode", "must be range or all", c.Mode)
	}
	if c.Mode == "range" && !(c.Step > 0) {
		return errors.NewValidationError("step", "must be > 0", c.Step)
	}
	if _, err := dataset.ParseShuffleMode(c.Shuffle); err != nil {
		return err
	}
	if _, err := log.ToLogLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("log-level", err.Error(), c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return errors.NewValidationError("log-format", "must be json or console", c.LogFormat)
	}
	if c.LogEvery < 0 {
		c.LogEvery = 0
	}
	return nil
}
