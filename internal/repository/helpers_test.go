// internal/repository/helpers_test.go
package repository

import (
	"context"
	"fmt"
	"testing"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB はテストごとに独立したインメモリDBを作る
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 同時書き込みはコネクション1本に直列化する
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

// seedTopic はトピック・単語・テスト(問題付き)を作成する
func seedTopic(t *testing.T, db *gorm.DB, concepts, questions int) (*model.Topic, []*model.Concept, *model.Test) {
	t.Helper()
	ctx := context.Background()

	topic := &model.Topic{TopicID: uuid.New(), Name: "animals-" + uuid.NewString()[:8]}
	require.NoError(t, NewGormTopicRepository().Create(ctx, db, topic))

	var cs []*model.Concept
	for i := 0; i < concepts; i++ {
		c := &model.Concept{ConceptID: uuid.New(), TopicID: topic.TopicID, Term: fmt.Sprintf("term%d", i), Meaning: fmt.Sprintf("meaning%d", i)}
		require.NoError(t, NewGormConceptRepository().Create(ctx, db, c))
		cs = append(cs, c)
	}

	testRepo := NewGormTestRepository()
	test := &model.Test{TestID: uuid.New(), TopicID: topic.TopicID, Title: "quiz", MaxScore: 100}
	require.NoError(t, testRepo.Create(ctx, db, test))
	for i := 0; i < questions; i++ {
		q := &model.Question{
			QuestionID:    uuid.New(),
			TestID:        test.TestID,
			Content:       fmt.Sprintf("Q%d", i),
			Answers:       []string{"a", "b", "c"},
			CorrectAnswer: "a",
		}
		if i < len(cs) {
			id := cs[i].ConceptID
			q.RelatedConceptID = &id
		}
		require.NoError(t, testRepo.CreateQuestion(ctx, db, q))
	}
	return topic, cs, test
}
