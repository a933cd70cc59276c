package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// PanicError は学習ループなどで回復したpanicを表すエラー
type PanicError struct {
	Operation  string      // 回復した場所
	PanicValue interface{} // panicに渡された値
	StackTrace string      // 回復時点のスタック
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String はスタックトレースを含む詳細を返す
func (e *PanicError) String() string {
	return e.Error() + "\nStack trace:\n" + e.StackTrace
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *PanicError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type", "PanicError").
		Str("operation", e.Operation).
		Str("panic_value", fmt.Sprint(e.PanicValue))
}

// NewPanicError は現在のスタックを記録したPanicErrorを返す
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		Operation:  operation,
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
	}
}

// Recover はdeferで呼び出し、panicを*errに変換する
//
//	func (r *SGDRegressor) Train(epochs int, lr float64) (err error) {
//	    defer errors.Recover(&err, "SGDRegressor.Train")
//	    ...
//	}
//
// *errが既に設定されていれば、そのエラーをpanicの情報でラップする
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = errors.Wrapf(*err, "panic in %s: %v (original error)", operation, r)
		return
	}
	*err = NewPanicError(operation, r)
}

// SafeExecute はfnを実行し、panicをPanicErrorとして返す
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
