package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
	categoryModel "dengueapp_backend/internals/features/quiz/categories/model"
	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
)

// ErrDuplicateAnswer sinaliza violação do índice único (tentativa, pergunta).
var ErrDuplicateAnswer = errors.New("resposta duplicada para a pergunta nesta tentativa")

// CategoryWithQuestions agrupa uma categoria ativa com suas perguntas ativas
// (opções carregadas).
type CategoryWithQuestions struct {
	Category  categoryModel.QuizCategoryModel
	Questions []questionModel.QuizQuestionModel
}

// QuestionBank é a visão read-only do banco de perguntas usada pelo engine.
// Ausência é (nil, nil) / lista vazia, nunca erro.
type QuestionBank interface {
	ActiveCategories(ctx context.Context) ([]CategoryWithQuestions, error)
	QuestionByID(ctx context.Context, id uuid.UUID) (*questionModel.QuizQuestionModel, error)
}

// AttemptStore persiste tentativas e respostas.
type AttemptStore interface {
	Create(ctx context.Context, a *attemptModel.QuizAttemptModel) error
	ByID(ctx context.Context, id uuid.UUID) (*attemptModel.QuizAttemptModel, error)
	Update(ctx context.Context, a *attemptModel.QuizAttemptModel) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]attemptModel.QuizAttemptModel, int64, error)

	// CreateAnswer devolve ErrDuplicateAnswer quando (attempt, question) já existe.
	CreateAnswer(ctx context.Context, ans *attemptModel.QuizUserAnswerModel) error
	AnswersByAttempt(ctx context.Context, attemptID uuid.UUID) ([]attemptModel.QuizUserAnswerModel, error)
}
