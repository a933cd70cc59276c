// Package dataset は単回帰の訓練データ（入力・参照出力・学習順序）を保持する。
//
// 訓練データはテキスト行または配列から追加される。3つのスライスは常に同じ長さで、
// 学習順序はデータ本体を移動せずにシャッフルできるよう添字の順列として持つ。
package dataset

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
	"github.com/YuminosukeSato/sgdreg/pkg/log"
)

// DefaultMaxLineLength は1行の最大バイト数の既定値
const DefaultMaxLineLength = 1 << 20

// Dataset は訓練ペアと学習順序を保持する
// 不変条件: len(inputs) == len(outputs) == len(order) かつ order は [0, n) の順列
type Dataset struct {
	inputs  []float64 // 入力
	outputs []float64 // 参照出力
	order   []int     // 学習順序（inputsへの添字）

	logger        log.Logger
	maxLineLength int
}

// LoadStats はテキスト読み込みの集計結果
type LoadStats struct {
	Lines           int // 走査した行数
	Pairs           int // 追加された訓練ペア数
	Skipped         int // 数値がちょうど2つでなかった行数
	MalformedTokens int // 解析できず0として扱ったトークン数
}

// Option はDatasetの設定オプション
type Option func(*Dataset)

// WithLogger はロガーを設定する
func WithLogger(l log.Logger) Option {
	return func(d *Dataset) {
		d.logger = l
	}
}

// WithMaxLineLength は1行の最大バイト数を設定する
func WithMaxLineLength(n int) Option {
	return func(d *Dataset) {
		if n > 0 {
			d.maxLineLength = n
		}
	}
}

// New は空のDatasetを作成する
func New(opts ...Option) *Dataset {
	d := &Dataset{
		maxLineLength: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.GetLogger()
	}
	d.logger = d.logger.With(log.ComponentKey, "dataset")
	return d
}

// Len は訓練ペア数を返す
func (d *Dataset) Len() int {
	return len(d.inputs)
}

// Sample はk番目（追加順）の訓練ペアを返す
func (d *Dataset) Sample(k int) (x, y float64) {
	return d.inputs[k], d.outputs[k]
}

// Inputs は入力のコピーを追加順で返す
func (d *Dataset) Inputs() []float64 {
	return append([]float64(nil), d.inputs...)
}

// Outputs は参照出力のコピーを追加順で返す
func (d *Dataset) Outputs() []float64 {
	return append([]float64(nil), d.outputs...)
}

// Order は現在の学習順序のコピーを返す
func (d *Dataset) Order() []int {
	return append([]int(nil), d.order...)
}

// EachInOrder は現在の学習順序で各訓練ペアを訪問する
func (d *Dataset) EachInOrder(fn func(k int, x, y float64)) {
	for _, k := range d.order {
		fn(k, d.inputs[k], d.outputs[k])
	}
}

// Reset は3つのスライスをまとめて空にする
func (d *Dataset) Reset() {
	d.inputs = d.inputs[:0]
	d.outputs = d.outputs[:0]
	d.order = d.order[:0]
}

func (d *Dataset) push(x, y float64) {
	d.inputs = append(d.inputs, x)
	d.outputs = append(d.outputs, y)
	d.order = append(d.order, len(d.inputs)-1)
}

// IngestLine は1行から数値を抽出し、ちょうど2つなら訓練ペアとして追加する
// 追加した場合にtrueを返す。0個・1個・3個以上の行は黙って破棄する
func (d *Dataset) IngestLine(line string) bool {
	ex := Extract(line)
	if ex.Malformed > 0 {
		d.logger.Debug("malformed numeric token coerced to zero",
			log.MalformedKey, ex.Malformed,
		)
	}
	if len(ex.Numbers) != 2 {
		return false
	}
	d.push(ex.Numbers[0], ex.Numbers[1])
	return true
}

// IngestArrays は入力と参照出力の配列を末尾に追加する
// 既存の学習順序は保持され、新しい添字 (n+i) が末尾に追加される
func (d *Dataset) IngestArrays(inputs, outputs []float64) error {
	if len(inputs) != len(outputs) {
		d.logger.Warn("rejected training arrays",
			log.ErrorCodeKey, log.ErrorArityMismatch,
			"inputs", len(inputs),
			"outputs", len(outputs),
		)
		return errors.NewDimensionError("Dataset.IngestArrays", len(inputs), len(outputs), 0)
	}
	for i := range inputs {
		d.push(inputs[i], outputs[i])
	}
	d.logger.Debug("training arrays ingested",
		log.OperationKey, log.OperationIngest,
		log.SourceKey, "arrays",
		log.SamplesKey, len(inputs),
	)
	return nil
}

// LoadFile はテキストファイルから訓練データを読み込む
// ファイルを開けない場合はResourceErrorを返し、データセットは変更しない
func (d *Dataset) LoadFile(path string) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		d.logger.Error("could not open training data",
			log.ErrAttrKey, err,
			log.ErrorCodeKey, log.ErrorResourceUnavailable,
			log.SourceKey, path,
		)
		return LoadStats{}, errors.NewResourceError("Dataset.LoadFile", path, err)
	}
	defer f.Close()

	stats, err := d.load(f, path)
	if err != nil {
		return stats, errors.Wrapf(err, "load %s", path)
	}
	return stats, nil
}

// LoadReader はrから1行ずつ訓練データを読み込む
// 読み込み中にエラーが発生した場合は何も追加しない
func (d *Dataset) LoadReader(r io.Reader) (LoadStats, error) {
	return d.load(r, "reader")
}

func (d *Dataset) load(r io.Reader, source string) (LoadStats, error) {
	start := time.Now()

	var (
		stats  LoadStats
		xs, ys []float64
	)

	initial := 4096
	if d.maxLineLength < initial {
		initial = d.maxLineLength
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), d.maxLineLength)

	for scanner.Scan() {
		stats.Lines++
		ex := Extract(scanner.Text())
		stats.MalformedTokens += ex.Malformed
		if len(ex.Numbers) != 2 {
			stats.Skipped++
			continue
		}
		xs = append(xs, ex.Numbers[0])
		ys = append(ys, ex.Numbers[1])
	}
	if err := scanner.Err(); err != nil {
		return LoadStats{Lines: stats.Lines}, errors.Wrapf(err, "read training data after line %d", stats.Lines)
	}

	for i := range xs {
		d.push(xs[i], ys[i])
	}
	stats.Pairs = len(xs)

	d.logger.Info("training data loaded",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, source,
		log.LinesKey, stats.Lines,
		log.SamplesKey, stats.Pairs,
		log.SkippedKey, stats.Skipped,
		log.MalformedKey, stats.MalformedTokens,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return stats, nil
}
