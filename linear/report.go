package linear

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

// separator は予測結果の前後に出力する区切り線
var separator = strings.Repeat("-", 74)

// FormatNumber は往復可能な最短表現で数値を整形する
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// PredictAll は訓練入力すべて（追加順）について予測結果を書き出す
// wがnilの場合は標準出力に書く。訓練データが空の場合は何も出力しない
func (r *SGDRegressor) PredictAll(threshold float64, w io.Writer) error {
	if r.data.Len() == 0 {
		return nil
	}
	xs := r.data.Inputs()
	i := 0
	next := func() (float64, bool, error) {
		if i >= len(xs) {
			return 0, false, nil
		}
		i++
		return xs[i-1], true, nil
	}
	return r.writeReport("SGDRegressor.PredictAll", log.OperationPredictAll, threshold, w, next)
}

// PredictRange は x = start, start+step, ... (x <= end) について予測結果を書き出す
//
// xは浮動小数点の加算で進むため、終端付近では誤差により最後の点が含まれないことがある。
// stepは正の有限値でなければならない。訓練データが空の場合は何も出力しない。
// stepが小さすぎてxが進まなくなった場合は、それまでの出力を書き出してからValueErrorを返す。
func (r *SGDRegressor) PredictRange(start, end, step, threshold float64, w io.Writer) error {
	const op = "SGDRegressor.PredictRange"
	if !errors.IsFinite(start) || !errors.IsFinite(end) {
		return errors.NewValueError(op, "start and end must be finite")
	}
	if !errors.IsFinite(step) || step <= 0 {
		return errors.NewValueError(op, "step must be a positive finite number")
	}
	if r.data.Len() == 0 {
		return nil
	}

	x := start
	first := true
	next := func() (float64, bool, error) {
		if !first {
			advanced := x + step
			if advanced == x {
				return 0, false, errors.NewValueError(op, "step is too small to advance past "+FormatNumber(x))
			}
			x = advanced
		}
		first = false
		if x > end {
			return 0, false, nil
		}
		return x, true, nil
	}
	return r.writeReport(op, log.OperationPredictRange, threshold, w, next)
}

func (r *SGDRegressor) writeReport(op, operation string, threshold float64, w io.Writer,
	next func() (float64, bool, error)) error {
	if w == nil {
		w = os.Stdout
	}
	bw := bufio.NewWriter(w)

	bw.WriteString(separator)
	bw.WriteByte('\n')
	count := 0
	for {
		x, ok, err := next()
		if err != nil {
			bw.Flush()
			return err
		}
		if !ok {
			break
		}
		if count > 0 {
			bw.WriteByte('\n')
		}
		y := ThresholdSnap(r.Predict(x), threshold)
		bw.WriteString("Input: " + FormatNumber(x) + "\n")
		bw.WriteString("Output: " + FormatNumber(y) + "\n")
		count++
	}
	bw.WriteString(separator)
	bw.WriteString("\n\n")

	if err := bw.Flush(); err != nil {
		return errors.NewModelError(op, "write failed", err)
	}
	r.logger.Debug("predictions written",
		log.OperationKey, operation,
		log.PhaseKey, log.PhaseInference,
		log.PredsKey, count,
		log.ThresholdKey, threshold,
	)
	return nil
}
