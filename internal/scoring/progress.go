package scoring

import (
	"math"

	"vocab_learn/internal/model"
)

// CompletionPercentage は clamp(round(100*(idx+1)/total), 0, 100) を返す
func CompletionPercentage(currentWordIndex, totalWords int) (int, error) {
	if totalWords <= 0 {
		return 0, model.NewAppError("INVALID_TOTAL_WORDS", "単語数は1以上で指定してください。", "totalWords", model.ErrInvalidInput)
	}
	pct := int(math.Round(100 * float64(currentWordIndex+1) / float64(totalWords)))
	return clamp(pct, 0, 100), nil
}

// IndexFromPercentage は保存済みの進捗率から現在位置を逆算する。
// 単語数が保存時から変わっていると近似値になる
func IndexFromPercentage(pct, totalWords int) int {
	if totalWords <= 0 {
		return 0
	}
	// floor(pct/100*total) を整数演算で
	idx := clamp(pct, 0, 100) * totalWords / 100
	return clamp(idx, 0, totalWords-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
