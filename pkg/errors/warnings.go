package errors

import (
	"log"
	"sync"
)

// 警告は処理を止めずに利用者へ知らせたい異常（係数の発散など）に使う。
// 既定では標準ロガーに出し、zerologの出力先が設定されていればそちらを優先する。
var (
	warnMu      sync.Mutex
	warnHandler = defaultWarnHandler
	zerologWarn func(warning error)
)

func defaultWarnHandler(w error) {
	log.Printf("sgdreg-Warning: %v\n", w)
}

// SetWarningHandler は警告の出力先を差し替える。nilを渡すと警告を捨てる
//
//	errors.SetWarningHandler(func(w error) {
//	    metrics.Warnings.Inc()
//	})
func SetWarningHandler(handler func(w error)) {
	warnMu.Lock()
	defer warnMu.Unlock()
	warnHandler = handler
}

// SetZerologWarnFunc はzerologへの出力関数を設定する（pkg/logのZerologWarnFuncを渡す）
// nilで解除すると SetWarningHandler のハンドラに戻る
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warnMu.Lock()
	defer warnMu.Unlock()
	zerologWarn = warnFunc
}

// Warn は警告を1件送出する
func Warn(w error) {
	warnMu.Lock()
	defer warnMu.Unlock()

	switch {
	case zerologWarn != nil:
		zerologWarn(w)
	case warnHandler != nil:
		warnHandler(w)
	}
}
