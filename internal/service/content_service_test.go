package service_test

import (
	"context"
	"strings"
	"testing"

	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_AddQuestionValidation(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, concepts, test := env.seedAnimals(t)

	other, err := env.content.CreateTopic(ctx, &model.TopicRequest{Name: "food"})
	require.NoError(t, err)
	apple, err := env.content.CreateConcept(ctx, other.TopicID, &model.ConceptRequest{Term: "apple", Meaning: "りんご"})
	require.NoError(t, err)

	t.Run("正解が選択肢に無い", func(t *testing.T) {
		_, err := env.content.AddQuestion(ctx, test.TestID, &model.CreateQuestionRequest{Content: "Q", Answers: []string{"a", "b"}, CorrectAnswer: "c"})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "correctAnswer", appErr.Detail.Field)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("別トピックの単語は関連付けられない", func(t *testing.T) {
		id := apple.ConceptID
		_, err := env.content.AddQuestion(ctx, test.TestID, &model.CreateQuestionRequest{Content: "Q", Answers: []string{"a", "b"}, CorrectAnswer: "a", RelatedConceptID: &id})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("存在しないテスト", func(t *testing.T) {
		_, err := env.content.AddQuestion(ctx, uuid.New(), &model.CreateQuestionRequest{Content: "Q", Answers: []string{"a", "b"}, CorrectAnswer: "a"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("同じトピックの単語なら追加できキャッシュが消える", func(t *testing.T) {
		id := concepts["dog"].ConceptID
		q, err := env.content.AddQuestion(ctx, test.TestID, &model.CreateQuestionRequest{Content: "dog?", Answers: []string{"a", "b"}, CorrectAnswer: "b", RelatedConceptID: &id})
		require.NoError(t, err)
		assert.Equal(t, test.TestID, q.TestID)
		assert.Contains(t, env.cache.deleted, test.TestID)

		full, err := env.content.GetTestWithQuestions(ctx, test.TestID)
		require.NoError(t, err)
		assert.Len(t, full.Questions, 5)
		assert.Equal(t, topic.TopicID, full.TopicID)
	})
}

func TestContentService_GetTestWithQuestionsUsesCache(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	_, _, test := env.seedAnimals(t)

	hits := env.cache.hits
	_, err := env.content.GetTestWithQuestions(ctx, test.TestID)
	require.NoError(t, err)
	assert.Equal(t, hits+1, env.cache.hits)

	forTaking, err := env.content.GetTestForTaking(ctx, test.TestID)
	require.NoError(t, err)
	assert.Len(t, forTaking.Questions, 4)

	_, err = env.content.GetTestWithQuestions(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContentService_CreateTestDefaultsMaxScore(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, err := env.content.CreateTopic(ctx, &model.TopicRequest{Name: "verbs"})
	require.NoError(t, err)

	test, err := env.content.CreateTest(ctx, topic.TopicID, &model.CreateTestRequest{Title: "verbs 1"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultMaxScore, test.MaxScore)

	_, err = env.content.CreateTest(ctx, uuid.New(), &model.CreateTestRequest{Title: "orphan"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContentService_DuplicateTopicAndTerm(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, _, _ := env.seedAnimals(t)

	_, err := env.content.CreateTopic(ctx, &model.TopicRequest{Name: "animals"})
	assert.ErrorIs(t, err, model.ErrConflict)

	_, err = env.content.CreateConcept(ctx, topic.TopicID, &model.ConceptRequest{Term: "cat", Meaning: "ねこ"})
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestContentService_ImportConcepts(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, _, _ := env.seedAnimals(t)

	// cat は既存、2つ目の horse はファイル内重複、cow は意味が空
	csv := strings.Join([]string{
		"term,meaning,pronunciation,example,imageUrl,audioUrl",
		"cat,ねこ,,,,",
		"horse,うま,,,,",
		"horse,馬,,,,",
		"cow,,,,,",
		"sheep,ひつじ,ʃiːp,,,",
	}, "\n")

	res, err := env.content.ImportConcepts(ctx, topic.TopicID, "words.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Errors, 1)

	list, err := env.content.ListConcepts(ctx, topic.TopicID)
	require.NoError(t, err)
	assert.Len(t, list, 6)

	n, err := env.content.GetConceptCountForTopic(ctx, topic.TopicID)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = env.content.ImportConcepts(ctx, topic.TopicID, "words.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = env.content.ImportConcepts(ctx, uuid.New(), "words.csv", strings.NewReader("dog,いぬ"))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContentService_ImportConcepts_ValidatesRows(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, _, _ := env.seedAnimals(t)

	csv := strings.Join([]string{
		"term,meaning,pronunciation,example,imageUrl,audioUrl",
		"goat,やぎ,,,not-a-url,",
		strings.Repeat("x", 201) + ",長すぎる単語,,,,",
		"duck,あひる,,,https://example.com/duck.png,",
	}, "\n")

	res, err := env.content.ImportConcepts(ctx, topic.TopicID, "words.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, []string{
		"2行目: 画像URLは有効なURLではありません。",
		"3行目: 単語は200文字以下で入力してください。",
	}, res.Errors)

	list, err := env.content.ListConcepts(ctx, topic.TopicID)
	require.NoError(t, err)
	terms := make([]string, 0, len(list))
	for _, c := range list {
		terms = append(terms, c.Term)
	}
	assert.Contains(t, terms, "duck")
	assert.NotContains(t, terms, "goat")
}

func TestContentService_DeleteTopicCascades(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, _, test := env.seedAnimals(t)
	userID := uuid.New()

	_, err := env.submission.SubmitTest(ctx, userID, threeOfFour(test))
	require.NoError(t, err)
	_, err = env.progress.Advance(ctx, userID, topic.TopicID, 1, 4)
	require.NoError(t, err)

	require.NoError(t, env.content.DeleteTopic(ctx, topic.TopicID))
	assert.Contains(t, env.cache.deleted, test.TestID)

	_, err = env.content.GetTopic(ctx, topic.TopicID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = env.content.GetTestWithQuestions(ctx, test.TestID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	words, err := repository.NewGormVocabErrorRepository().CountByUser(ctx, env.db, userID)
	require.NoError(t, err)
	assert.Zero(t, words)

	// 受験記録は残る
	attempts, err := env.attempts.ListAttempts(ctx, userID, 10)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)

	assert.ErrorIs(t, env.content.DeleteTopic(ctx, topic.TopicID), model.ErrNotFound)
}

func TestContentService_DeleteConceptDetachesQuestions(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	_, concepts, test := env.seedAnimals(t)

	require.NoError(t, env.content.DeleteConcept(ctx, concepts["cat"].ConceptID))
	assert.Contains(t, env.cache.deleted, test.TestID)

	full, err := env.content.GetTestWithQuestions(ctx, test.TestID)
	require.NoError(t, err)
	for _, q := range full.Questions {
		assert.Nil(t, q.RelatedConceptID)
	}

	assert.ErrorIs(t, env.content.DeleteConcept(ctx, concepts["cat"].ConceptID), model.ErrNotFound)
}

func TestContentService_UpdateTopicAndConcept(t *testing.T) {
	ctx := context.Background()
	env := newLearningEnv(t)
	topic, concepts, _ := env.seedAnimals(t)

	updated, err := env.content.UpdateTopic(ctx, topic.TopicID, &model.TopicRequest{Name: "pets", Description: "身近な動物"})
	require.NoError(t, err)
	assert.Equal(t, "pets", updated.Name)

	_, err = env.content.UpdateTopic(ctx, uuid.New(), &model.TopicRequest{Name: "x"})
	assert.ErrorIs(t, err, model.ErrNotFound)

	c, err := env.content.UpdateConcept(ctx, concepts["dog"].ConceptID, &model.ConceptRequest{Term: "dog", Meaning: "犬", Example: "I have a dog."})
	require.NoError(t, err)
	assert.Equal(t, "犬", c.Meaning)
	assert.Equal(t, "I have a dog.", c.Example)

	_, err = env.content.UpdateConcept(ctx, uuid.New(), &model.ConceptRequest{Term: "x", Meaning: "y"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
