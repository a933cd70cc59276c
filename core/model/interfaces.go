package model

import "io"

// Predictor は単一入力に対する予測を行うモデルのインターフェース
type Predictor interface {
	// Predict は入力xに対する予測値を返す
	Predict(x float64) float64
}

// IncrementalTrainer はエポック単位で逐次学習するモデルのインターフェース
type IncrementalTrainer interface {
	// Train は指定エポック数・学習率で学習を行う
	Train(epochs int, learningRate float64) error
}

// Reporter は予測結果をテキストとして出力するモデルのインターフェース
type Reporter interface {
	// PredictAll は訓練入力すべてについて予測結果を書き出す
	PredictAll(threshold float64, w io.Writer) error

	// PredictRange は[start, end]をstep刻みで予測結果を書き出す
	PredictRange(start, end, step, threshold float64, w io.Writer) error
}

// Scorer は訓練データに対するスコアを計算できるモデルのインターフェース
type Scorer interface {
	// Score は決定係数R²を返す
	Score() (float64, error)
}

// LinearModel は学習済みの係数を公開するモデルのインターフェース
type LinearModel interface {
	// Weight は学習された傾きを返す
	Weight() float64
	// Bias は学習された切片を返す
	Bias() float64
}

// Regressor は単回帰モデルが満たすべきインターフェースをまとめたもの
type Regressor interface {
	Predictor
	IncrementalTrainer
	Reporter
	Scorer
	LinearModel
}
