package errors

import "math"

// IsFinite はvがNaNでも±Infでもないかを返す
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckNumericalStability はvaluesに非有限値があればNumericalInstabilityErrorを返す
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if !IsFinite(v) {
			return NewNumericalInstabilityError(operation, append([]float64(nil), values...), iteration)
		}
	}
	return nil
}
