package linear

import (
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
)

// OrdinaryLeastSquares は最小二乗法による閉形式解（傾き・切片）を返す
// SGDの学習結果と比較するための基準値として使う
func OrdinaryLeastSquares(d *dataset.Dataset) (weight, bias float64, err error) {
	const op = "OrdinaryLeastSquares"
	if d.Len() == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if d.Len() < 2 {
		return 0, 0, errors.NewValueError(op, "at least two samples are required")
	}

	xs, ys := d.Inputs(), d.Outputs()
	if stat.Variance(xs, nil) == 0 {
		return 0, 0, errors.NewValueError(op, "inputs have no variance")
	}

	// y = alpha + beta·x
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta, alpha, nil
}
