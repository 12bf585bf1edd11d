package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dengueapp_backend/internals/features/quiz/attempts/dto"
	attemptService "dengueapp_backend/internals/features/quiz/attempts/service"
	helper "dengueapp_backend/internals/helpers"
	"dengueapp_backend/internals/helpers/apperr"
)

var validate = validator.New()

type QuizAttemptController struct {
	Service *attemptService.AttemptService
}

func NewQuizAttemptController(svc *attemptService.AttemptService) *QuizAttemptController {
	return &QuizAttemptController{Service: svc}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID não encontrado no token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID inválido no token")
	}
	return id, nil
}

func writeServiceError(c *fiber.Ctx, err error) error {
	if apperr.KindOf(err) != 0 {
		return helper.FromAppError(c, err)
	}
	return helper.WritePGError(c, err)
}

// =============================
// ▶️ Start Quiz
// =============================
func (ctrl *QuizAttemptController) StartQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var body dto.StartQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.Start(c.Context(), userID, body.TotalQuestions)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz iniciado", resp)
}

// =============================
// ✍️ Submit Answer
// =============================
func (ctrl *QuizAttemptController) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var body dto.SubmitAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	attemptID, _ := uuid.Parse(body.QuizAttemptID)
	questionID, _ := uuid.Parse(body.QuizQuestionID)
	optionID, _ := uuid.Parse(body.SelectedOptionID)

	resp, err := ctrl.Service.SubmitAnswer(c.Context(), userID, attemptID, questionID, optionID, body.TimeSpentSeconds)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Resposta registrada", resp)
}

// =============================
// 🏁 Finish Quiz
// =============================
func (ctrl *QuizAttemptController) FinishQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var body dto.FinishQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	attemptID, _ := uuid.Parse(body.QuizAttemptID)

	resp, err := ctrl.Service.Finish(c.Context(), userID, attemptID, body.TotalTimeSeconds)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Quiz finalizado", resp)
}

// =============================
// 📄 Get Result (replay)
// =============================
func (ctrl *QuizAttemptController) GetResult(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(c.Params("attempt_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "attempt_id inválido")
	}

	resp, err := ctrl.Service.GetResult(c.Context(), userID, attemptID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "OK", resp)
}

// =============================
// 📄 Minhas tentativas (paginado)
// =============================
func (ctrl *QuizAttemptController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 50)

	attempts, total, err := ctrl.Service.ListByUser(c.Context(), userID, paging.Offset, paging.Limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"attempts":   attempts,
		"pagination": helper.BuildPagination(paging, total, len(attempts)),
	})
}
