// Command sgdreg trains a univariate linear model with stochastic gradient
// descent on a text data file and prints its predictions.
//
// With no flags it loads data.txt, trains 1000 epochs at learning rate 0.01
// and prints predictions for inputs -10..10 in steps of 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/linear"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
	"github.com/YuminosukeSato/sgdreg/pkg/telemetry"
	"github.com/YuminosukeSato/sgdreg/plotting"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one demo pipeline. Predictions go to stdout, logs to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("sgdreg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 2
	}

	logger, err := setupLogging(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "setup logging: %v\n", err)
		return 2
	}
	defer errors.SetZerologWarnFunc(nil)

	err = errors.SafeExecute("sgdreg.pipeline", func() error {
		return pipeline(cfg, logger, stdout)
	})
	if err != nil {
		logger.Error("run failed", log.ErrAttrKey, err)
		return 1
	}
	return 0
}

// setupLogging installs the process logger and routes library warnings
// through zerolog.
func setupLogging(cfg Config, w io.Writer) (log.Logger, error) {
	level, err := log.ToLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zlevel := log.ToZerologLevel(log.Level(level))

	var logger log.Logger
	var zl zerolog.Logger
	switch cfg.LogFormat {
	case "console":
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(zlevel).With().Timestamp().Logger()
		logger = log.NewZerologLogger(zl)
	default:
		if err := log.SetupLogger(cfg.LogLevel, w); err != nil {
			return nil, err
		}
		zl = zerolog.New(w).Level(zlevel).With().Timestamp().Logger()
		logger = log.NewSlogLogger(nil)
	}

	log.SetLogger(logger)
	errors.SetZerologWarnFunc(log.ZerologWarnFunc(zl))
	return logger.With(log.ComponentKey, "cmd.sgdreg"), nil
}

func pipeline(cfg Config, logger log.Logger, stdout io.Writer) error {
	mode, err := dataset.ParseShuffleMode(cfg.Shuffle)
	if err != nil {
		return err
	}

	opts := []linear.Option{
		linear.WithLogger(logger),
		linear.WithShuffleMode(mode),
		linear.WithLogEvery(cfg.LogEvery),
	}
	if cfg.Seeded {
		opts = append(opts, linear.WithSeed(cfg.Seed))
	}

	reg := prometheus.NewRegistry()
	if cfg.MetricsFile != "" {
		m, err := telemetry.NewTrainingMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, linear.WithObserver(m))
	}

	model := linear.NewSGDRegressor(opts...)

	// 読み込みに失敗しても空のデータセットで続行する
	if _, err := model.Data().LoadFile(cfg.DataPath); err != nil {
		logger.Error("training data unavailable; continuing with an empty dataset",
			log.ErrAttrKey, err,
			log.SourceKey, cfg.DataPath,
		)
	}

	if err := model.Train(cfg.Epochs, cfg.LearningRate); err != nil {
		return err
	}
	reportFit(model, logger)

	switch cfg.Mode {
	case "all":
		err = model.PredictAll(cfg.Threshold, stdout)
	default:
		err = model.PredictRange(cfg.Start, cfg.End, cfg.Step, cfg.Threshold, stdout)
	}
	if err != nil {
		return err
	}

	if cfg.PlotPath != "" {
		if model.Data().Len() == 0 {
			logger.Warn("no training data; plot skipped", "plot.path", cfg.PlotPath)
		} else if err := plotting.SaveFit(cfg.PlotPath, model.Data(), model.Predict); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err := telemetry.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
	}
	return nil
}

// reportFit logs training metrics and the gap to the closed-form solution.
func reportFit(model *linear.SGDRegressor, logger log.Logger) {
	if !model.IsFitted() {
		return
	}
	if report, err := model.Evaluate(); err == nil {
		logger.Info("training metrics",
			"metrics.mse", report.MSE,
			"metrics.rmse", report.RMSE,
			"metrics.mae", report.MAE,
			log.R2ScoreKey, report.R2,
		)
	} else {
		logger.Debug("training metrics unavailable", log.ErrAttrKey, err)
	}

	w, b, err := linear.OrdinaryLeastSquares(model.Data())
	if err != nil {
		logger.Debug("closed-form baseline unavailable", log.ErrAttrKey, err)
		return
	}
	logger.Info("closed-form baseline",
		"ols.weight", w,
		"ols.bias", b,
		"ols.weight_gap", model.Weight()-w,
		"ols.bias_gap", model.Bias()-b,
	)
}
