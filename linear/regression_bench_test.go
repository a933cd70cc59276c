package linear

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

// createBenchmarkData はベンチマーク用のデータを生成する
func createBenchmarkData(n int) (xs, ys []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		// -1.0 から 1.0 の範囲のランダムな値
		xs[i] = rng.Float64()*2.0 - 1.0
		// y = 0.5x + 1 + 小さなノイズ
		ys[i] = 0.5*xs[i] + 1 + (rng.Float64()-0.5)*0.1
	}
	return xs, ys
}

func benchLogger() log.Logger {
	logger, _ := log.NewTestLogger(log.LevelError)
	return logger
}

// BenchmarkSGDRegressorTrain は1エポックあたりの学習コストを計測する
func BenchmarkSGDRegressorTrain(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"Small_100", 100},
		{"Medium_1000", 1000},
		{"Large_10000", 10000},
		{"XLarge_100000", 100000},
	}

	for _, size := range sizes {
		for _, mode := range []dataset.ShuffleMode{dataset.ShuffleBiased, dataset.ShuffleUniform} {
			b.Run(size.name+"/"+mode.String(), func(b *testing.B) {
				xs, ys := createBenchmarkData(size.n)
				r := NewSGDRegressor(WithSeed(42), WithShuffleMode(mode), WithLogger(benchLogger()), WithLogEvery(0))
				if err := r.Data().IngestArrays(xs, ys); err != nil {
					b.Fatal(err)
				}

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if err := r.Train(1, 0.01); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkPredictRange は予測結果の書き出しを計測する
func BenchmarkPredictRange(b *testing.B) {
	r := NewSGDRegressor(WithSeed(42), WithLogger(benchLogger()))
	r.Data().IngestLine("1 2")
	r.SetCoefficients(0.5, 1)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := r.PredictRange(-1000, 1000, 1, 0.0001, io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
