package service

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"dengueapp_backend/internals/features/quiz/attempts/dto"
	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
	"dengueapp_backend/internals/features/quiz/attempts/repository"
	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
	"dengueapp_backend/internals/helpers/apperr"
)

// IdentityLookup é o que o engine precisa saber sobre usuários.
type IdentityLookup interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AttemptService controla o ciclo de vida de uma tentativa de quiz:
// sorteio das perguntas, registro de respostas e fechamento com nota.
type AttemptService struct {
	Bank         repository.QuestionBank
	Store        repository.AttemptStore
	Users        IdentityLookup
	PassingScore float64
}

func NewAttemptService(bank repository.QuestionBank, store repository.AttemptStore, users IdentityLookup, passingScore float64) *AttemptService {
	return &AttemptService{
		Bank:         bank,
		Store:        store,
		Users:        users,
		PassingScore: passingScore,
	}
}

// =============================
// Start
// =============================

// Start sorteia as perguntas, cria a tentativa e devolve o conjunto SEM o
// gabarito. Pode devolver menos perguntas que o pedido quando o banco é menor.
func (s *AttemptService) Start(ctx context.Context, userID uuid.UUID, totalQuestions int) (*dto.StartQuizResponse, error) {
	exists, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return nil, apperr.Dependency("Falha ao consultar usuário", err)
	}
	if !exists {
		return nil, apperr.NotFound("Usuário não encontrado")
	}

	categories, err := s.Bank.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperr.NotFound("Nenhuma pergunta ativa disponível")
	}

	selected := drawQuestions(categories, totalQuestions)
	if len(selected) == 0 {
		return nil, apperr.NotFound("Nenhuma pergunta ativa disponível")
	}

	ids := make([]uuid.UUID, 0, len(selected))
	for _, q := range selected {
		ids = append(ids, q.QuizQuestionID)
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}

	attempt := attemptModel.QuizAttemptModel{
		QuizAttemptUserID:         userID,
		QuizAttemptStatus:         attemptModel.AttemptStatusInProgress,
		QuizAttemptQuestionIDs:    idsJSON,
		QuizAttemptTotalQuestions: len(selected),
		QuizAttemptStartedAt:      time.Now(),
	}
	if err := s.Store.Create(ctx, &attempt); err != nil {
		return nil, err
	}

	questions := make([]dto.RedactedQuestionDTO, 0, len(selected))
	for _, q := range selected {
		questions = append(questions, dto.ToRedactedQuestionDTO(q))
	}

	log.Printf("[INFO] Tentativa %s iniciada: user=%s perguntas=%d",
		attempt.QuizAttemptID, userID, len(selected))

	return &dto.StartQuizResponse{
		QuizAttemptID:  attempt.QuizAttemptID.String(),
		TotalQuestions: len(selected),
		StartedAt:      attempt.QuizAttemptStartedAt,
		Questions:      questions,
	}, nil
}

// drawQuestions distribui o pedido igualmente entre as categorias ativas
// (perCategory = max(1, total/categorias)), sorteia sem reposição dentro de
// cada uma, completa com o restante do pool se faltar e embaralha o resultado.
func drawQuestions(categories []repository.CategoryWithQuestions, total int) []questionModel.QuizQuestionModel {
	perCategory := total / len(categories)
	if perCategory < 1 {
		perCategory = 1
	}

	picked := make([]questionModel.QuizQuestionModel, 0, total)
	pickedIDs := make(map[uuid.UUID]struct{}, total)
	var pool []questionModel.QuizQuestionModel

	for _, cat := range categories {
		qs := make([]questionModel.QuizQuestionModel, len(cat.Questions))
		copy(qs, cat.Questions)
		rand.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })

		take := perCategory
		if take > len(qs) {
			take = len(qs)
		}
		for _, q := range qs[:take] {
			picked = append(picked, q)
			pickedIDs[q.QuizQuestionID] = struct{}{}
		}
		pool = append(pool, qs[take:]...)
	}

	// completa com sorteio uniforme no pool restante, sem duplicar
	if len(picked) < total && len(pool) > 0 {
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for _, q := range pool {
			if len(picked) >= total {
				break
			}
			if _, ok := pickedIDs[q.QuizQuestionID]; ok {
				continue
			}
			picked = append(picked, q)
			pickedIDs[q.QuizQuestionID] = struct{}{}
		}
	}

	rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	if len(picked) > total {
		picked = picked[:total]
	}
	return picked
}

// ownedAttempt carrega a tentativa e confirma o dono. Tentativa de outro
// usuário responde como inexistente, sem vazar que o ID existe.
func (s *AttemptService) ownedAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*attemptModel.QuizAttemptModel, error) {
	attempt, err := s.Store.ByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil || attempt.QuizAttemptUserID != userID {
		return nil, apperr.NotFound("Tentativa não encontrada")
	}
	return attempt, nil
}

// =============================
// SubmitAnswer
// =============================

// SubmitAnswer registra a resposta e revela o gabarito daquela pergunta.
// Correção é calculada aqui no servidor; o cliente nunca manda is_correct.
func (s *AttemptService) SubmitAnswer(ctx context.Context, userID, attemptID, questionID, selectedOptionID uuid.UUID, timeSpentSeconds int) (*dto.SubmitAnswerResponse, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsInProgress() {
		return nil, apperr.InvalidState("Tentativa não está em andamento")
	}

	question, err := s.Bank.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperr.NotFound("Pergunta não encontrada")
	}

	selected := question.OptionByID(selectedOptionID)
	if selected == nil {
		return nil, apperr.NotFound("Opção de resposta não pertence a esta pergunta")
	}

	correct := question.CorrectOption()
	if correct == nil {
		// invariante do banco de perguntas violado; não deveria acontecer
		return nil, apperr.InvalidState("Pergunta sem opção correta cadastrada")
	}
	isCorrect := selected.QuizAnswerOptionID == correct.QuizAnswerOptionID

	answer := attemptModel.QuizUserAnswerModel{
		QuizUserAnswerAttemptID:        attemptID,
		QuizUserAnswerQuestionID:       questionID,
		QuizUserAnswerSelectedOptionID: selectedOptionID,
		QuizUserAnswerIsCorrect:        isCorrect,
		QuizUserAnswerTimeSpentSeconds: timeSpentSeconds,
		QuizUserAnswerQuestionText:     question.QuizQuestionText,
		QuizUserAnswerSelectedText:     selected.QuizAnswerOptionText,
		QuizUserAnswerCorrectText:      correct.QuizAnswerOptionText,
		QuizUserAnswerExplanation:      question.QuizQuestionExplanation,
	}
	if err := s.Store.CreateAnswer(ctx, &answer); err != nil {
		if err == repository.ErrDuplicateAnswer {
			return nil, apperr.Conflict("Pergunta já respondida nesta tentativa")
		}
		return nil, err
	}

	return &dto.SubmitAnswerResponse{
		IsCorrect:       isCorrect,
		CorrectAnswerID: correct.QuizAnswerOptionID.String(),
		Explanation:     question.QuizQuestionExplanation,
	}, nil
}

// =============================
// Finish
// =============================

func (s *AttemptService) Finish(ctx context.Context, userID, attemptID uuid.UUID, totalTimeSeconds int) (*dto.QuizResultResponse, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsInProgress() {
		return nil, apperr.InvalidState("Tentativa já finalizada ou abandonada")
	}

	answers, err := s.Store.AnswersByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	score, correct, incorrect := ComputeScore(attempt.QuizAttemptTotalQuestions, answers)

	now := time.Now()
	attempt.QuizAttemptStatus = attemptModel.AttemptStatusCompleted
	attempt.QuizAttemptCompletedAt = &now
	attempt.QuizAttemptScore = score
	attempt.QuizAttemptCorrectAnswers = correct
	attempt.QuizAttemptIncorrectAnswers = incorrect
	attempt.QuizAttemptTotalTimeSeconds = totalTimeSeconds
	if err := s.Store.Update(ctx, attempt); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Tentativa %s finalizada: nota=%.2f acertos=%d erros=%d",
		attemptID, score, correct, incorrect)

	return s.buildResult(attempt, answers), nil
}

// =============================
// GetResult — replay do payload de Finish, só para tentativas completas
// =============================

func (s *AttemptService) GetResult(ctx context.Context, userID, attemptID uuid.UUID) (*dto.QuizResultResponse, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsCompleted() {
		return nil, apperr.InvalidState("Tentativa ainda não finalizada")
	}

	answers, err := s.Store.AnswersByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return s.buildResult(attempt, answers), nil
}

func (s *AttemptService) buildResult(attempt *attemptModel.QuizAttemptModel, answers []attemptModel.QuizUserAnswerModel) *dto.QuizResultResponse {
	details := make([]dto.AnswerDetailDTO, 0, len(answers))
	for _, ans := range answers {
		details = append(details, dto.AnswerDetailDTO{
			QuestionText:      ans.QuizUserAnswerQuestionText,
			UserAnswerText:    ans.QuizUserAnswerSelectedText,
			CorrectAnswerText: ans.QuizUserAnswerCorrectText,
			IsCorrect:         ans.QuizUserAnswerIsCorrect,
			Explanation:       ans.QuizUserAnswerExplanation,
		})
	}

	passed := attempt.QuizAttemptScore >= s.PassingScore
	return &dto.QuizResultResponse{
		QuizAttemptID:          attempt.QuizAttemptID.String(),
		Status:                 attempt.QuizAttemptStatus,
		Score:                  attempt.QuizAttemptScore,
		CorrectAnswers:         attempt.QuizAttemptCorrectAnswers,
		IncorrectAnswers:       attempt.QuizAttemptIncorrectAnswers,
		TotalQuestions:         attempt.QuizAttemptTotalQuestions,
		TotalTimeSeconds:       attempt.QuizAttemptTotalTimeSeconds,
		CompletedAt:            attempt.QuizAttemptCompletedAt,
		Passed:                 passed,
		CanGenerateCertificate: passed,
		Details:                details,
	}
}

// =============================
// Histórico do usuário
// =============================

func (s *AttemptService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]dto.AttemptSummaryDTO, int64, error) {
	attempts, total, err := s.Store.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, dto.ToAttemptSummaryDTO(a))
	}
	return out, total, nil
}
