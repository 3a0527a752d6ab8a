// internal/repository/content_repository_test.go
package repository

import (
	"context"
	"testing"

	"vocab_learn/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTestRepository_FindWithQuestions(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, concepts, test := seedTopic(t, db, 2, 3)

	got, err := NewGormTestRepository().FindWithQuestions(ctx, db, test.TestID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)

	related := 0
	for _, q := range got.Questions {
		assert.Equal(t, []string{"a", "b", "c"}, []string(q.Answers))
		if q.RelatedConceptID != nil {
			related++
		}
	}
	assert.Equal(t, len(concepts), related)

	_, err = NewGormTestRepository().FindWithQuestions(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestConceptRepository_CountAndFindByIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	topic, concepts, _ := seedTopic(t, db, 4, 0)
	repo := NewGormConceptRepository()

	count, err := repo.CountByTopic(ctx, db, topic.TopicID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	found, err := repo.FindByIDs(ctx, db, []uuid.UUID{concepts[0].ConceptID, concepts[2].ConceptID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	empty, err := repo.FindByIDs(ctx, db, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	exists, err := repo.ExistsTermInTopic(ctx, db, topic.TopicID, "term1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConceptRepository_Delete_DetachesQuestions(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, concepts, test := seedTopic(t, db, 1, 1)
	repo := NewGormConceptRepository()

	require.NoError(t, repo.Delete(ctx, db, concepts[0].ConceptID))

	got, err := NewGormTestRepository().FindWithQuestions(ctx, db, test.TestID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
	assert.Nil(t, got.Questions[0].RelatedConceptID)

	assert.ErrorIs(t, repo.Delete(ctx, db, concepts[0].ConceptID), model.ErrNotFound)
}

func TestTopicRepository_DeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	topic, concepts, test := seedTopic(t, db, 3, 3)
	other, _, otherTest := seedTopic(t, db, 1, 1)

	userID := uuid.New()
	require.NoError(t, NewGormVocabErrorRepository().IncrementError(ctx, db, userID, concepts[0].ConceptID))

	err := db.Transaction(func(tx *gorm.DB) error {
		return NewGormTopicRepository().DeleteCascade(ctx, tx, topic.TopicID)
	})
	require.NoError(t, err)

	countOf := func(m interface{}, where string, arg interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(m).Where(where, arg).Count(&n).Error)
		return n
	}
	assert.Zero(t, countOf(&model.Question{}, "test_id = ?", test.TestID))
	assert.Zero(t, countOf(&model.Test{}, "topic_id = ?", topic.TopicID))
	assert.Zero(t, countOf(&model.Concept{}, "topic_id = ?", topic.TopicID))
	assert.Zero(t, countOf(&model.Topic{}, "topic_id = ?", topic.TopicID))
	assert.Zero(t, countOf(&model.UserVocabularyError{}, "user_id = ?", userID))

	// 他のトピックは残る
	assert.Equal(t, int64(1), countOf(&model.Topic{}, "topic_id = ?", other.TopicID))
	assert.Equal(t, int64(1), countOf(&model.Question{}, "test_id = ?", otherTest.TestID))

	err = db.Transaction(func(tx *gorm.DB) error {
		return NewGormTopicRepository().DeleteCascade(ctx, tx, topic.TopicID)
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestTestRepository_FindIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	topic, concepts, test := seedTopic(t, db, 2, 2)
	repo := NewGormTestRepository()

	ids, err := repo.FindIDsByTopic(ctx, db, topic.TopicID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{test.TestID}, ids)

	ids, err = repo.FindIDsByRelatedConcept(ctx, db, concepts[1].ConceptID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{test.TestID}, ids)

	ids, err = repo.FindIDsByRelatedConcept(ctx, db, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, ids)
}
