package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dengueapp_backend/internals/configs"
	attemptController "dengueapp_backend/internals/features/quiz/attempts/controller"
	attemptRepo "dengueapp_backend/internals/features/quiz/attempts/repository"
	attemptService "dengueapp_backend/internals/features/quiz/attempts/service"
	userService "dengueapp_backend/internals/features/users/user/service"
)

func QuizAttemptRoutes(api fiber.Router, auth fiber.Handler, db *gorm.DB) {
	svc := attemptService.NewAttemptService(
		attemptRepo.NewGormQuestionBank(db),
		attemptRepo.NewGormAttemptStore(db),
		userService.NewIdentityService(db),
		configs.QuizPassingScore,
	)
	ctrl := attemptController.NewQuizAttemptController(svc)

	quiz := api.Group("/quiz", auth)
	quiz.Post("/start", ctrl.StartQuiz)
	quiz.Post("/answer", ctrl.SubmitAnswer)
	quiz.Post("/submit", ctrl.FinishQuiz)
	quiz.Get("/result/:attempt_id", ctrl.GetResult)
	quiz.Get("/attempts/me", ctrl.GetMyAttempts)
}
