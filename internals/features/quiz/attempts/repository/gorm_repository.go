package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
	categoryModel "dengueapp_backend/internals/features/quiz/categories/model"
	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
	helper "dengueapp_backend/internals/helpers"
)

// =============================
// QuestionBank (GORM)
// =============================

type GormQuestionBank struct {
	DB *gorm.DB
}

func NewGormQuestionBank(db *gorm.DB) *GormQuestionBank {
	return &GormQuestionBank{DB: db}
}

func (r *GormQuestionBank) ActiveCategories(ctx context.Context) ([]CategoryWithQuestions, error) {
	var categories []categoryModel.QuizCategoryModel
	if err := r.DB.WithContext(ctx).
		Where("quiz_category_is_active = TRUE").
		Order("quiz_category_name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(categories))
	for _, cat := range categories {
		ids = append(ids, cat.QuizCategoryID)
	}

	var questions []questionModel.QuizQuestionModel
	if err := r.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_answer_option_order ASC")
		}).
		Where("quiz_question_category_id IN ? AND quiz_question_is_active = TRUE", ids).
		Find(&questions).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]questionModel.QuizQuestionModel, len(categories))
	for _, q := range questions {
		byCategory[q.QuizQuestionCategoryID] = append(byCategory[q.QuizQuestionCategoryID], q)
	}

	out := make([]CategoryWithQuestions, 0, len(categories))
	for _, cat := range categories {
		qs := byCategory[cat.QuizCategoryID]
		if len(qs) == 0 {
			continue // categoria ativa sem pergunta ativa não entra no sorteio
		}
		out = append(out, CategoryWithQuestions{Category: cat, Questions: qs})
	}
	return out, nil
}

func (r *GormQuestionBank) QuestionByID(ctx context.Context, id uuid.UUID) (*questionModel.QuizQuestionModel, error) {
	var q questionModel.QuizQuestionModel
	err := r.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_answer_option_order ASC")
		}).
		First(&q, "quiz_question_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// =============================
// AttemptStore (GORM)
// =============================

type GormAttemptStore struct {
	DB *gorm.DB
}

func NewGormAttemptStore(db *gorm.DB) *GormAttemptStore {
	return &GormAttemptStore{DB: db}
}

func (r *GormAttemptStore) Create(ctx context.Context, a *attemptModel.QuizAttemptModel) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormAttemptStore) ByID(ctx context.Context, id uuid.UUID) (*attemptModel.QuizAttemptModel, error) {
	var a attemptModel.QuizAttemptModel
	err := r.DB.WithContext(ctx).First(&a, "quiz_attempt_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAttemptStore) Update(ctx context.Context, a *attemptModel.QuizAttemptModel) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *GormAttemptStore) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]attemptModel.QuizAttemptModel, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&attemptModel.QuizAttemptModel{}).
		Where("quiz_attempt_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []attemptModel.QuizAttemptModel
	if err := r.DB.WithContext(ctx).
		Where("quiz_attempt_user_id = ?", userID).
		Order("quiz_attempt_started_at DESC").
		Offset(offset).Limit(limit).
		Find(&attempts).Error; err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

func (r *GormAttemptStore) CreateAnswer(ctx context.Context, ans *attemptModel.QuizUserAnswerModel) error {
	if err := r.DB.WithContext(ctx).Create(ans).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return ErrDuplicateAnswer
		}
		return err
	}
	return nil
}

func (r *GormAttemptStore) AnswersByAttempt(ctx context.Context, attemptID uuid.UUID) ([]attemptModel.QuizUserAnswerModel, error) {
	var answers []attemptModel.QuizUserAnswerModel
	if err := r.DB.WithContext(ctx).
		Where("quiz_user_answer_attempt_id = ?", attemptID).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
