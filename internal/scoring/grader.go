// Package scoring はテストの採点と進捗率の計算を行う。I/O を持たない純粋関数のみ
package scoring

import (
	"math"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
)

// GradeResult は採点結果
type GradeResult struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	// 不正解かつ RelatedConceptID を持つ問題ごとに1件。重複はそのまま残す
	MissedConceptIDs []uuid.UUID
}

// Grade は回答を完全一致で採点する。
// answers に無い問題、値が nil の問題は不正解。
// 点数は 100*正解数/問題数 を最後に1回だけ四捨五入する
func Grade(test *model.Test, answers map[uuid.UUID]*string) (*GradeResult, error) {
	if test == nil || len(test.Questions) == 0 {
		return nil, model.NewAppError("INVALID_TEST_STATE", "問題が登録されていないテストは採点できません。", "testId", model.ErrInvalidTestState)
	}

	res := &GradeResult{
		TotalQuestions:   len(test.Questions),
		MissedConceptIDs: []uuid.UUID{},
	}
	for _, q := range test.Questions {
		if a, ok := answers[q.QuestionID]; ok && a != nil && *a == q.CorrectAnswer {
			res.CorrectCount++
			continue
		}
		if q.RelatedConceptID != nil {
			res.MissedConceptIDs = append(res.MissedConceptIDs, *q.RelatedConceptID)
		}
	}
	res.Score = scoreOf(res.CorrectCount, res.TotalQuestions)
	return res, nil
}

// scoreOf は round(100*correct/total)。問題0件は Grade が先に弾くので 0 を返すだけ
func scoreOf(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
