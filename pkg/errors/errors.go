// Package errors は sgdreg の型付きエラーと警告の仕組みを提供する。
//
// すべてのエラーは cockroachdb/errors でスタックトレースを付けて返し、
// 構造化ログで扱いやすいよう MarshalZerologObject を実装する。
package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ErrEmptyData は訓練データが空で処理できない場合のエラー
var ErrEmptyData = New("empty data")

// DimensionError は並列な配列の長さが一致しない場合のエラー
// 入力と参照出力の個数の不一致（arity mismatch）を表す
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0: 行, 1: 列
}

func (e *DimensionError) Error() string {
	axis := "rows"
	if e.Axis != 0 {
		axis = "columns"
	}
	return fmt.Sprintf("sgdreg: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, axis, e.Expected, e.Got)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type", "DimensionError").
		Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis)
}

// NewDimensionError はスタックトレース付きのDimensionErrorを返す
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError はハイパーパラメータや設定値が不正な場合のエラー
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sgdreg: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type", "ValidationError").
		Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value)
}

// NewValidationError はスタックトレース付きのValidationErrorを返す
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は引数の組み合わせが処理できない場合のエラー
// 例: PredictRangeのstepが0以下
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("sgdreg: %s: %s", e.Op, e.Message)
}

// NewValueError はスタックトレース付きのValueErrorを返す
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError はモデルの操作が失敗した場合のエラー。原因はErrに保持する
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sgdreg: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("sgdreg: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError はスタックトレース付きのModelErrorを返す
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// ResourceError は訓練データファイルを開けなかった場合のエラー
// 致命的ではなく、呼び出し側は報告したうえで空のデータセットのまま続行できる
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("sgdreg: %s: could not open %q: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *ResourceError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type", "ResourceError").
		Str("operation", e.Op).
		Str("path", e.Path).
		AnErr("cause", e.Err)
}

// NewResourceError はスタックトレース付きのResourceErrorを返す
func NewResourceError(op, path string, err error) error {
	return errors.WithStack(&ResourceError{Op: op, Path: path, Err: err})
}

// NumericalInstabilityError は係数がNaN・Infに発散した場合の警告
// 学習は中断せず、Warnで1回だけ通知する
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Context   map[string]interface{}
	Iteration int // エポック番号
}

func (e *NumericalInstabilityError) Error() string {
	var b strings.Builder
	for i, v := range e.Values {
		if i == 5 {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.6g", v)
	}
	return fmt.Sprintf("sgdreg: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, b.String())
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type", "NumericalInstabilityError").
		Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Floats64("values", e.Values).
		Fields(e.Context)
}

// NewNumericalInstabilityError はスタックトレース付きのNumericalInstabilityErrorを返す
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
		Context:   map[string]interface{}{},
	})
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Wrap annotates err with msg and a stack trace.
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }

// Wrapf annotates err with a formatted message and a stack trace.
func Wrapf(err error, format string, args ...any) error { return errors.Wrapf(err, format, args...) }

// New returns an error with a stack trace.
func New(msg string) error { return errors.New(msg) }

// Newf returns a formatted error with a stack trace.
func Newf(format string, args ...any) error { return errors.Newf(format, args...) }
