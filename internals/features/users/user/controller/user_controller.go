package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dengueapp_backend/internals/constants"
	"dengueapp_backend/internals/features/users/user/dto"
	"dengueapp_backend/internals/features/users/user/model"
	helper "dengueapp_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// ➕ Create User (admin)
// =============================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	role := body.UserRole
	if role == "" {
		role = constants.RoleUser
	}

	data := model.UserModel{
		UserName:     body.UserName,
		UserEmail:    body.UserEmail,
		UserPassword: string(hash),
		UserRole:     role,
		UserIsActive: true,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&data).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado", dto.ToUserDTO(data))
}

// =============================
// 👤 Get Me (do token)
// =============================
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userIDRaw := c.Locals("user_id")
	if userIDRaw == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User ID não encontrado no token")
	}
	userID, err := uuid.Parse(userIDRaw.(string))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User ID inválido no token")
	}

	var u model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.WritePGError(c, err)
	}

	return helper.Success(c, "OK", dto.ToUserDTO(u))
}

// =============================
// 📄 Get All Users (admin, paginado)
// =============================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var users []model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, dto.ToUserDTO(u))
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      dtos,
		"pagination": helper.BuildPagination(paging, total, len(dtos)),
	})
}

// =============================
// ✏️ Update User (admin)
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var u model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.UserName != nil {
		u.UserName = *body.UserName
	}
	if body.UserIsActive != nil {
		u.UserIsActive = *body.UserIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&u).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.Success(c, "Usuário atualizado", dto.ToUserDTO(u))
}
