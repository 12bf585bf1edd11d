package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dengueapp_backend/internals/configs"
	certController "dengueapp_backend/internals/features/certificates/controller"
	certRepo "dengueapp_backend/internals/features/certificates/repository"
	certService "dengueapp_backend/internals/features/certificates/service"
	attemptRepo "dengueapp_backend/internals/features/quiz/attempts/repository"
	userService "dengueapp_backend/internals/features/users/user/service"
	"dengueapp_backend/internals/helpers/oss"
	"dengueapp_backend/internals/middlewares"
	authMiddleware "dengueapp_backend/internals/middlewares/auth"
	"dengueapp_backend/internals/platform/event"
	"dengueapp_backend/internals/platform/pdfgen"
)

func buildService(db *gorm.DB) *certService.CertificateService {
	ossSvc, err := oss.NewOSSServiceFromEnv("certificados")
	if err != nil {
		log.Fatalf("[FATAL] Storage de certificados indisponível: %v", err)
	}

	var events certService.EventPublisher
	if configs.AMQPUrl != "" {
		pub, err := event.NewPublisher(configs.AMQPUrl, configs.AMQPExchange)
		if err != nil {
			log.Printf("[WARN] Publisher AMQP indisponível, eventos desativados: %v", err)
		} else {
			events = pub
		}
	}

	return certService.NewCertificateService(
		certRepo.NewGormCertificateStore(db),
		attemptRepo.NewGormAttemptStore(db),
		userService.NewIdentityService(db),
		ossSvc,
		pdfgen.NewRenderer(),
		events,
		configs.QuizPassingScore,
		configs.CertCodeSalt,
	)
}

func CertificateRoutes(api fiber.Router, auth fiber.Handler, db *gorm.DB) {
	registerCertificateRoutes(api, auth, certController.NewCertificateController(buildService(db)))
}

// registerCertificateRoutes prende o auth rota a rota: a verificação por
// código é pública (qualquer portador do certificado impresso) e por isso o
// middleware NÃO pode entrar como Use no prefixo /certificate.
func registerCertificateRoutes(api fiber.Router, auth fiber.Handler, ctrl *certController.CertificateController) {
	api.Get("/certificate/verify/:code", ctrl.VerifyCertificate)

	cert := api.Group("/certificate")
	cert.Post("/generate", auth, middlewares.CertificateRateLimiter(), ctrl.GenerateCertificate)
	cert.Get("/me", auth, ctrl.GetMyCertificates)
	cert.Get("/:id/download", auth, ctrl.DownloadCertificate)
	cert.Patch("/:id/revoke", auth, authMiddleware.OnlyAdmin("revogar certificados"), ctrl.RevokeCertificate)
}
