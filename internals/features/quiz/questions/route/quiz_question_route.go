package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "dengueapp_backend/internals/features/quiz/questions/controller"
	authMw "dengueapp_backend/internals/middlewares/auth"
)

func QuizQuestionRoutes(api fiber.Router, auth fiber.Handler, db *gorm.DB) {
	ctrl := questionController.NewQuizQuestionController(db)

	admin := api.Group("/admin/quiz/questions", auth, authMw.OnlyAdmin("perguntas do quiz"))
	admin.Post("/", ctrl.CreateQuizQuestion)
	admin.Get("/", ctrl.GetQuizQuestionsByCategory)
	admin.Put("/:id", ctrl.UpdateQuizQuestion)
	admin.Patch("/:id/deactivate", ctrl.DeactivateQuizQuestion)
}
