package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dengueapp_backend/internals/constants"
	"dengueapp_backend/internals/features/certificates/dto"
	certService "dengueapp_backend/internals/features/certificates/service"
	helper "dengueapp_backend/internals/helpers"
	"dengueapp_backend/internals/helpers/apperr"
)

var validate = validator.New()

type CertificateController struct {
	Service *certService.CertificateService
}

func NewCertificateController(svc *certService.CertificateService) *CertificateController {
	return &CertificateController{Service: svc}
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
// 🏅 Gerar certificado
// =============================
func (ctrl *CertificateController) GenerateCertificate(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var body dto.GenerateCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	attemptID, _ := uuid.Parse(body.QuizAttemptID)

	resp, err := ctrl.Service.Generate(c.Context(), userID, attemptID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificado gerado", resp)
}

// =============================
// 🔎 Verificação pública por código
// =============================
func (ctrl *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Código de verificação obrigatório")
	}

	resp, err := ctrl.Service.Verify(c.Context(), code)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, resp.Message, resp)
}

// =============================
// 🚫 Revogar (admin)
// =============================
func (ctrl *CertificateController) RevokeCertificate(c *fiber.Ctx) error {
	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID do certificado inválido")
	}

	var body dto.RevokeCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.Revoke(c.Context(), certID, body.Reason)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Certificado revogado", resp)
}

// =============================
// ⬇️ Download do PDF
// =============================
func (ctrl *CertificateController) DownloadCertificate(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID do certificado inválido")
	}

	// admin pode baixar certificado de qualquer usuário
	if role, _ := c.Locals("role").(string); role == constants.RoleAdmin {
		userID = uuid.Nil
	}

	data, filename, err := ctrl.Service.Download(c.Context(), userID, certID)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// =============================
// 📄 Meus certificados
// =============================
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	certs, err := ctrl.Service.ListByUser(c.Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "OK", certs)
}
