package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certRoute "dengueapp_backend/internals/features/certificates/route"
	attemptRoute "dengueapp_backend/internals/features/quiz/attempts/route"
	categoryRoute "dengueapp_backend/internals/features/quiz/categories/route"
	questionRoute "dengueapp_backend/internals/features/quiz/questions/route"
	userRoute "dengueapp_backend/internals/features/users/user/route"
	authMiddleware "dengueapp_backend/internals/middlewares/auth"
)

// SetupRoutes monta a árvore /api. O AuthMiddleware é preso por grupo/rota,
// nunca como Use no prefixo /api inteiro: um Use ali rodaria para TODA
// requisição /api/*, inclusive a verificação pública de certificado.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	BaseRoutes(app, db)

	auth := authMiddleware.AuthMiddleware()

	userRoute.UserRoutes(api, auth, db)
	categoryRoute.QuizCategoryRoutes(api, auth, db)
	questionRoute.QuizQuestionRoutes(api, auth, db)
	attemptRoute.QuizAttemptRoutes(api, auth, db)
	certRoute.CertificateRoutes(api, auth, db)
}
