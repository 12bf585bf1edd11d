package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "dengueapp_backend/internals/features/users/user/controller"
	authMw "dengueapp_backend/internals/middlewares/auth"
)

// UserRoutes registra as rotas do usuário. Agentes de saúde podem consultar
// a lista de moradores; criação e edição seguem só para admin.
func UserRoutes(api fiber.Router, auth fiber.Handler, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user := api.Group("/users", auth)
	user.Get("/me", ctrl.GetMe)

	admin := api.Group("/admin/users", auth)
	admin.Get("/", authMw.OnlyStaff("usuários"), ctrl.GetAllUsers)
	admin.Post("/", authMw.OnlyAdmin("usuários"), ctrl.CreateUser)
	admin.Put("/:id", authMw.OnlyAdmin("usuários"), ctrl.UpdateUser)
}
