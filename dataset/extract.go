package dataset

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
)

// Extraction は1行から抽出された数値と、解析に失敗したトークン数
type Extraction struct {
	Numbers   []float64
	Malformed int
}

// IsNumberRune は数値トークンを構成できる文字かどうかを返す
// カンマは小数点の代替表記として扱う
func IsNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.' || r == ','
}

// ParseToken は数値トークンを浮動小数点数に変換する
// 不正なトークン（"-"、"1-2"、"1.2.3"など）は (0, false) を返す
func ParseToken(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", "."), 64)
	if err != nil {
		// 桁あふれはstrconvが返す±Inf/0をそのまま使う
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// Extract は1行を1文字ずつ走査し、数値トークンをすべて抽出する
// 数値以外の文字はトークンの区切りとして扱い、空のトークンは無視する
func Extract(line string) Extraction {
	var (
		ex  Extraction
		tok strings.Builder
	)
	flush := func() {
		if tok.Len() == 0 {
			return
		}
		v, ok := ParseToken(tok.String())
		if !ok {
			ex.Malformed++
		}
		ex.Numbers = append(ex.Numbers, v)
		tok.Reset()
	}

	for _, r := range line {
		if IsNumberRune(r) {
			tok.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return ex
}

// ExtractNumbers は1行から抽出した数値のみを返す
func ExtractNumbers(line string) []float64 {
	return Extract(line).Numbers
}

// ExtractPair は1行からちょうど2つの数値が得られた場合に (入力, 出力) を返す
func ExtractPair(line string) (x, y float64, ok bool) {
	nums := ExtractNumbers(line)
	if len(nums) != 2 {
		return 0, 0, false
	}
	return nums[0], nums[1], true
}
