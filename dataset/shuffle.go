package dataset

import (
	"fmt"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
)

// IndexSource は [0, n) の一様乱数を返す乱数源
// *math/rand/v2.Rand はこのインターフェースを満たす
type IndexSource interface {
	IntN(n int) int
}

// ShuffleMode はエポック毎の学習順序の並べ替え方
type ShuffleMode int

const (
	// ShuffleBiased は各位置iについて [0, n) から相手を選んで交換する
	// 一様な順列にはならないが、従来の学習挙動を再現する
	ShuffleBiased ShuffleMode = iota
	// ShuffleUniform はFisher–Yates法（相手を [i, n) から選ぶ）
	ShuffleUniform
	// ShuffleNone は並べ替えを行わない
	ShuffleNone
)

func (m ShuffleMode) String() string {
	switch m {
	case ShuffleBiased:
		return "biased"
	case ShuffleUniform:
		return "uniform"
	case ShuffleNone:
		return "none"
	default:
		return fmt.Sprintf("ShuffleMode(%d)", int(m))
	}
}

// ParseShuffleMode は名前からShuffleModeを得る
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch s {
	case "biased", "":
		return ShuffleBiased, nil
	case "uniform":
		return ShuffleUniform, nil
	case "none":
		return ShuffleNone, nil
	default:
		return ShuffleBiased, errors.NewValidationError("shuffle", "want biased, uniform or none", s)
	}
}

// Shuffle は学習順序のみを並べ替える。訓練データ本体は移動しない
func (d *Dataset) Shuffle(src IndexSource, mode ShuffleMode) {
	switch mode {
	case ShuffleBiased:
		shuffleBiased(d.order, src)
	case ShuffleUniform:
		shuffleUniform(d.order, src)
	}
}

func shuffleBiased(order []int, src IndexSource) {
	n := len(order)
	for i := 0; i < n; i++ {
		r := src.IntN(n)
		order[i], order[r] = order[r], order[i]
	}
}

func shuffleUniform(order []int, src IndexSource) {
	n := len(order)
	for i := 0; i < n-1; i++ {
		r := i + src.IntN(n-i)
		order[i], order[r] = order[r], order[i]
	}
}
