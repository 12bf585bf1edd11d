package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "dengueapp_backend/internals/features/quiz/categories/controller"
	authMw "dengueapp_backend/internals/middlewares/auth"
)

func QuizCategoryRoutes(api fiber.Router, auth fiber.Handler, db *gorm.DB) {
	ctrl := categoryController.NewQuizCategoryController(db)

	api.Get("/quiz/categories", auth, ctrl.GetActiveQuizCategories)

	admin := api.Group("/admin/quiz/categories", auth, authMw.OnlyAdmin("categorias do quiz"))
	admin.Post("/", ctrl.CreateQuizCategory)
	admin.Get("/", ctrl.GetAllQuizCategories)
	admin.Put("/:id", ctrl.UpdateQuizCategory)
}
