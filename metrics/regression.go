// Package metrics は回帰モデルの評価指標を提供する
package metrics

import (
	"math"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report は訓練データに対する評価指標の組
type Report struct {
	Samples           int     `json:"samples"`
	MSE               float64 `json:"mse"`
	RMSE              float64 `json:"rmse"`
	MAE               float64 `json:"mae"`
	R2                float64 `json:"r2"`
	ExplainedVariance float64 `json:"explained_variance"`
}

// residuals は入力を検証し yTrue - yPred を返す
func residuals(op string, yTrue, yPred []float64) ([]float64, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, errors.NewValueError(op, "empty vector")
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError(op, n, len(yPred), 0)
	}
	diff := make([]float64, n)
	floats.SubTo(diff, yTrue, yPred)
	return diff, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	diff, err := residuals("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	diff, err := residuals("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Norm(diff, 1) / float64(len(diff)), nil
}

// R2Score は決定係数（R²）を計算する
// yTrueがすべて同じ値の場合はエラーを返す
func R2Score(yTrue, yPred []float64) (float64, error) {
	if _, err := residuals("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}
	if stat.Variance(yTrue, nil) == 0 || len(yTrue) == 1 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}
	return stat.RSquaredFrom(yPred, yTrue, nil), nil
}

// ExplainedVarianceScore は説明分散スコアを計算する
func ExplainedVarianceScore(yTrue, yPred []float64) (float64, error) {
	diff, err := residuals("ExplainedVarianceScore", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	varTrue := stat.Variance(yTrue, nil)
	if varTrue == 0 || len(yTrue) == 1 {
		return 0, errors.Newf("ExplainedVarianceScore: no variance in yTrue")
	}
	// 説明分散スコア = 1 - Var(yTrue - yPred) / Var(yTrue)
	return 1 - stat.Variance(diff, nil)/varTrue, nil
}

// Evaluate はすべての指標をまとめて計算する
func Evaluate(yTrue, yPred []float64) (Report, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}
	mae, err := MAE(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}
	r2, err := R2Score(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}
	ev, err := ExplainedVarianceScore(yTrue, yPred)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Samples:           len(yTrue),
		MSE:               mse,
		RMSE:              math.Sqrt(mse),
		MAE:               mae,
		R2:                r2,
		ExplainedVariance: ev,
	}, nil
}
