// internal/service/content_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"vocab_learn/internal/cache"
	"vocab_learn/internal/config"
	"vocab_learn/internal/importer"
	"vocab_learn/internal/middleware"
	"vocab_learn/internal/model"
	"vocab_learn/internal/repository"
	"vocab_learn/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentService はトピック・単語・テストを管理する。
// 採点側からは GetTestWithQuestions / GetConceptsByIDs / GetConceptCountForTopic だけを使う
type ContentService interface {
	ListTopics(ctx context.Context) ([]*model.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	CreateTopic(ctx context.Context, req *model.TopicRequest) (*model.Topic, error)
	UpdateTopic(ctx context.Context, topicID uuid.UUID, req *model.TopicRequest) (*model.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error

	ListConcepts(ctx context.Context, topicID uuid.UUID) ([]*model.Concept, error)
	CreateConcept(ctx context.Context, topicID uuid.UUID, req *model.ConceptRequest) (*model.Concept, error)
	UpdateConcept(ctx context.Context, conceptID uuid.UUID, req *model.ConceptRequest) (*model.Concept, error)
	DeleteConcept(ctx context.Context, conceptID uuid.UUID) error
	ImportConcepts(ctx context.Context, topicID uuid.UUID, filename string, r io.Reader) (*model.ImportResult, error)

	ListTests(ctx context.Context, topicID uuid.UUID) ([]*model.Test, error)
	CreateTest(ctx context.Context, topicID uuid.UUID, req *model.CreateTestRequest) (*model.Test, error)
	AddQuestion(ctx context.Context, testID uuid.UUID, req *model.CreateQuestionRequest) (*model.Question, error)
	DeleteTest(ctx context.Context, testID uuid.UUID) error
	GetTestForTaking(ctx context.Context, testID uuid.UUID) (*model.TestForTakingResponse, error)

	GetTestWithQuestions(ctx context.Context, testID uuid.UUID) (*model.Test, error)
	GetConceptsByIDs(ctx context.Context, conceptIDs []uuid.UUID) ([]*model.Concept, error)
	GetConceptCountForTopic(ctx context.Context, topicID uuid.UUID) (int, error)
}

type contentService struct {
	db          *gorm.DB
	topicRepo   repository.TopicRepository
	conceptRepo repository.ConceptRepository
	testRepo    repository.TestRepository
	testCache   cache.TestCache
}

func NewContentService(db *gorm.DB, topicRepo repository.TopicRepository, conceptRepo repository.ConceptRepository, testRepo repository.TestRepository, testCache cache.TestCache) ContentService {
	if testCache == nil {
		testCache = cache.NoopCache{}
	}
	return &contentService{
		db:          db,
		topicRepo:   topicRepo,
		conceptRepo: conceptRepo,
		testRepo:    testRepo,
		testCache:   testCache,
	}
}

func topicNotFound() error {
	return model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "topicId", model.ErrNotFound)
}

func conceptNotFound() error {
	return model.NewAppError("CONCEPT_NOT_FOUND", "単語が見つかりません。", "conceptId", model.ErrNotFound)
}

func duplicateTopic() error {
	return model.NewAppError("DUPLICATE_TOPIC", "同じ名前のトピックが既に存在します。", "name", model.ErrConflict)
}

func testNotFound() error {
	return model.NewAppError("TEST_NOT_FOUND", "テストが見つかりません。", "testId", model.ErrNotFound)
}

// --- Topic ---

func (s *contentService) ListTopics(ctx context.Context) ([]*model.Topic, error) {
	topics, err := s.topicRepo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list topics", "error", err)
		return nil, internalError(err)
	}
	return topics, nil
}

func (s *contentService) GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	topic, err := s.topicRepo.FindByID(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, topicNotFound()
		}
		return nil, internalError(err)
	}
	return topic, nil
}

func (s *contentService) CreateTopic(ctx context.Context, req *model.TopicRequest) (*model.Topic, error) {
	topic := &model.Topic{
		TopicID:     uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.topicRepo.Create(ctx, s.db, topic); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, duplicateTopic()
		}
		middleware.GetLogger(ctx).Error("Failed to create topic", "error", err)
		return nil, internalError(err)
	}
	middleware.GetLogger(ctx).Info("Topic created", "topic_id", topic.TopicID.String())
	return topic, nil
}

func (s *contentService) UpdateTopic(ctx context.Context, topicID uuid.UUID, req *model.TopicRequest) (*model.Topic, error) {
	topic := &model.Topic{
		TopicID:     topicID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.topicRepo.Update(ctx, s.db, topic); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, topicNotFound()
		}
		if errors.Is(err, model.ErrConflict) {
			return nil, duplicateTopic()
		}
		return nil, internalError(err)
	}
	return s.GetTopic(ctx, topicID)
}

// DeleteTopic は配下の問題・テスト・単語ごと1トランザクションで削除する
func (s *contentService) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	var testIDs []uuid.UUID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := s.testRepo.FindIDsByTopic(ctx, tx, topicID)
		if err != nil {
			return err
		}
		testIDs = ids
		return s.topicRepo.DeleteCascade(ctx, tx, topicID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return topicNotFound()
		}
		logger.Error("Failed to delete topic", "error", err, "topic_id", topicID.String())
		return internalError(err)
	}
	s.testCache.Delete(ctx, testIDs...)
	return nil
}

// --- Concept ---

func (s *contentService) ListConcepts(ctx context.Context, topicID uuid.UUID) ([]*model.Concept, error) {
	if _, err := s.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}
	concepts, err := s.conceptRepo.FindByTopic(ctx, s.db, topicID)
	if err != nil {
		return nil, internalError(err)
	}
	return concepts, nil
}

func (s *contentService) CreateConcept(ctx context.Context, topicID uuid.UUID, req *model.ConceptRequest) (*model.Concept, error) {
	var created *model.Concept
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.topicRepo.FindByID(ctx, tx, topicID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return topicNotFound()
			}
			return err
		}
		exists, err := s.conceptRepo.ExistsTermInTopic(ctx, tx, topicID, req.Term)
		if err != nil {
			return err
		}
		if exists {
			return model.NewAppError("DUPLICATE_TERM", "この単語は既にトピックに登録されています。", "term", model.ErrConflict)
		}
		c := &model.Concept{
			ConceptID:     uuid.New(),
			TopicID:       topicID,
			Term:          req.Term,
			Meaning:       req.Meaning,
			Pronunciation: req.Pronunciation,
			Example:       req.Example,
			ImageURL:      req.ImageURL,
			AudioURL:      req.AudioURL,
		}
		if err := s.conceptRepo.Create(ctx, tx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, internalError(err)
	}
	return created, nil
}

func (s *contentService) UpdateConcept(ctx context.Context, conceptID uuid.UUID, req *model.ConceptRequest) (*model.Concept, error) {
	c := &model.Concept{
		ConceptID:     conceptID,
		Term:          req.Term,
		Meaning:       req.Meaning,
		Pronunciation: req.Pronunciation,
		Example:       req.Example,
		ImageURL:      req.ImageURL,
		AudioURL:      req.AudioURL,
	}
	if err := s.conceptRepo.Update(ctx, s.db, c); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, conceptNotFound()
		}
		return nil, internalError(err)
	}
	updated, err := s.conceptRepo.FindByID(ctx, s.db, conceptID)
	if err != nil {
		return nil, internalError(err)
	}
	return updated, nil
}

// DeleteConcept は単語を参照している問題の関連を外してから削除する
func (s *contentService) DeleteConcept(ctx context.Context, conceptID uuid.UUID) error {
	var affected []uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := s.testRepo.FindIDsByRelatedConcept(ctx, tx, conceptID)
		if err != nil {
			return err
		}
		affected = ids
		return s.conceptRepo.Delete(ctx, tx, conceptID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return conceptNotFound()
		}
		return internalError(err)
	}
	s.testCache.Delete(ctx, affected...)
	return nil
}

// ImportConcepts はファイル内の単語を一括登録する。既存と重複する単語は読み飛ばす
func (s *contentService) ImportConcepts(ctx context.Context, topicID uuid.UUID, filename string, r io.Reader) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx)

	rows, rowErrs, err := importer.Parse(filename, r)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			return nil, model.NewAppError("UNSUPPORTED_FILE", ".xlsx または .csv ファイルを指定してください。", "file", model.ErrInvalidInput)
		}
		return nil, model.NewAppError("INVALID_FILE", "ファイルを読み込めませんでした。", "file", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}

	result := &model.ImportResult{}
	for _, re := range rowErrs {
		result.Skipped++
		result.Errors = append(result.Errors, re.String())
	}
	// 画面からの登録と同じ validate タグで1行ずつ検証する
	rows = slices.DeleteFunc(rows, func(row importer.Row) bool {
		err := webutil.ValidateStruct(&model.ConceptRequest{
			Term:          row.Term,
			Meaning:       row.Meaning,
			Pronunciation: row.Pronunciation,
			Example:       row.Example,
			ImageURL:      row.ImageURL,
			AudioURL:      row.AudioURL,
		})
		if err == nil {
			return false
		}
		result.Skipped++
		result.Errors = append(result.Errors, importer.RowError{Line: row.Line, Reason: rowValidationReason(err)}.String())
		return true
	})

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.topicRepo.FindByID(ctx, tx, topicID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return topicNotFound()
			}
			return err
		}

		seen := make(map[string]bool, len(rows))
		var batch []*model.Concept
		for _, row := range rows {
			if seen[row.Term] {
				result.Skipped++
				continue
			}
			seen[row.Term] = true
			exists, err := s.conceptRepo.ExistsTermInTopic(ctx, tx, topicID, row.Term)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped++
				continue
			}
			batch = append(batch, &model.Concept{
				ConceptID:     uuid.New(),
				TopicID:       topicID,
				Term:          row.Term,
				Meaning:       row.Meaning,
				Pronunciation: row.Pronunciation,
				Example:       row.Example,
				ImageURL:      row.ImageURL,
				AudioURL:      row.AudioURL,
			})
		}
		if err := s.conceptRepo.CreateBatch(ctx, tx, batch); err != nil {
			return err
		}
		result.Imported = len(batch)
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to import concepts", "error", err, "topic_id", topicID.String())
		return nil, internalError(err)
	}

	logger.Info("Concepts imported", "topic_id", topicID.String(), "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func rowValidationReason(err error) string {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr.Detail.Message
	}
	return err.Error()
}

// --- Test ---

func (s *contentService) ListTests(ctx context.Context, topicID uuid.UUID) ([]*model.Test, error) {
	if _, err := s.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}
	tests, err := s.testRepo.FindByTopic(ctx, s.db, topicID)
	if err != nil {
		return nil, internalError(err)
	}
	return tests, nil
}

func (s *contentService) CreateTest(ctx context.Context, topicID uuid.UUID, req *model.CreateTestRequest) (*model.Test, error) {
	if _, err := s.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}
	maxScore := req.MaxScore
	if maxScore == 0 {
		maxScore = config.Cfg.App.DefaultTestMaxScore
	}
	if maxScore <= 0 {
		maxScore = model.DefaultMaxScore
	}
	test := &model.Test{
		TestID:   uuid.New(),
		TopicID:  topicID,
		Title:    req.Title,
		MaxScore: maxScore,
	}
	if err := s.testRepo.Create(ctx, s.db, test); err != nil {
		return nil, internalError(err)
	}
	return test, nil
}

// AddQuestion は正解が選択肢に含まれること、関連単語が同じトピックに属することを確認してから追加する
func (s *contentService) AddQuestion(ctx context.Context, testID uuid.UUID, req *model.CreateQuestionRequest) (*model.Question, error) {
	if !slices.Contains(req.Answers, req.CorrectAnswer) {
		return nil, model.NewAppError("CORRECT_ANSWER_NOT_IN_CHOICES", "正解は選択肢の中から指定してください。", "correctAnswer", model.ErrInvalidInput)
	}

	test, err := s.testRepo.FindByID(ctx, s.db, testID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, testNotFound()
		}
		return nil, internalError(err)
	}

	if req.RelatedConceptID != nil {
		c, err := s.conceptRepo.FindByID(ctx, s.db, *req.RelatedConceptID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, internalError(err)
		}
		if c == nil || c.TopicID != test.TopicID {
			return nil, model.NewAppError("INVALID_RELATED_CONCEPT", "関連単語はテストと同じトピックの単語を指定してください。", "relatedConceptId", model.ErrInvalidInput)
		}
	}

	q := &model.Question{
		QuestionID:       uuid.New(),
		TestID:           testID,
		Content:          req.Content,
		Answers:          req.Answers,
		CorrectAnswer:    req.CorrectAnswer,
		RelatedConceptID: req.RelatedConceptID,
	}
	if err := s.testRepo.CreateQuestion(ctx, s.db, q); err != nil {
		return nil, internalError(err)
	}
	s.testCache.Delete(ctx, testID)
	return q, nil
}

func (s *contentService) DeleteTest(ctx context.Context, testID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.testRepo.Delete(ctx, tx, testID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return testNotFound()
		}
		return internalError(err)
	}
	s.testCache.Delete(ctx, testID)
	return nil
}

func (s *contentService) GetTestForTaking(ctx context.Context, testID uuid.UUID) (*model.TestForTakingResponse, error) {
	test, err := s.GetTestWithQuestions(ctx, testID)
	if err != nil {
		return nil, err
	}
	resp := model.NewTestForTakingResponse(test)
	return &resp, nil
}

// --- 採点側から使う読み取り ---

// GetTestWithQuestions はキャッシュを優先し、無ければDBから読んでキャッシュに載せる
func (s *contentService) GetTestWithQuestions(ctx context.Context, testID uuid.UUID) (*model.Test, error) {
	if t, ok := s.testCache.Get(ctx, testID); ok {
		return t, nil
	}
	t, err := s.testRepo.FindWithQuestions(ctx, s.db, testID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, testNotFound()
		}
		middleware.GetLogger(ctx).Error("Failed to load test with questions", "error", err, "test_id", testID.String())
		return nil, internalError(err)
	}
	s.testCache.Set(ctx, t)
	return t, nil
}

func (s *contentService) GetConceptsByIDs(ctx context.Context, conceptIDs []uuid.UUID) ([]*model.Concept, error) {
	concepts, err := s.conceptRepo.FindByIDs(ctx, s.db, conceptIDs)
	if err != nil {
		return nil, internalError(err)
	}
	return concepts, nil
}

func (s *contentService) GetConceptCountForTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	n, err := s.conceptRepo.CountByTopic(ctx, s.db, topicID)
	if err != nil {
		return 0, internalError(err)
	}
	return int(n), nil
}
