package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dengueapp_backend/internals/features/quiz/categories/dto"
	"dengueapp_backend/internals/features/quiz/categories/model"
	helper "dengueapp_backend/internals/helpers"
)

var validate = validator.New()

type QuizCategoryController struct {
	DB *gorm.DB
}

func NewQuizCategoryController(db *gorm.DB) *QuizCategoryController {
	return &QuizCategoryController{DB: db}
}

// =============================
// ➕ Create Category (admin)
// =============================
func (ctrl *QuizCategoryController) CreateQuizCategory(c *fiber.Ctx) error {
	var body dto.CreateQuizCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	data := model.QuizCategoryModel{
		QuizCategoryName:        body.QuizCategoryName,
		QuizCategoryDescription: body.QuizCategoryDescription,
		QuizCategoryIsActive:    true,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&data).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Categoria criada", dto.ToQuizCategoryDTO(data))
}

// =============================
// 📄 Get All Categories (admin)
// =============================
func (ctrl *QuizCategoryController) GetAllQuizCategories(c *fiber.Ctx) error {
	var categories []model.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("quiz_category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	dtos := make([]dto.QuizCategoryDTO, 0, len(categories))
	for _, cat := range categories {
		dtos = append(dtos, dto.ToQuizCategoryDTO(cat))
	}

	return helper.Success(c, "OK", dtos)
}

// =============================
// 📄 Get Active Categories (público autenticado)
// =============================
func (ctrl *QuizCategoryController) GetActiveQuizCategories(c *fiber.Ctx) error {
	var categories []model.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_category_is_active = TRUE").
		Order("quiz_category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	dtos := make([]dto.QuizCategoryDTO, 0, len(categories))
	for _, cat := range categories {
		dtos = append(dtos, dto.ToQuizCategoryDTO(cat))
	}

	return helper.Success(c, "OK", dtos)
}

// =============================
// ✏️ Update Category (admin)
// =============================
func (ctrl *QuizCategoryController) UpdateQuizCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var cat model.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.Context()).First(&cat, "quiz_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Categoria não encontrada")
		}
		return helper.WritePGError(c, err)
	}

	var body dto.UpdateQuizCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.QuizCategoryName != nil {
		cat.QuizCategoryName = *body.QuizCategoryName
	}
	if body.QuizCategoryDescription != nil {
		cat.QuizCategoryDescription = *body.QuizCategoryDescription
	}
	if body.QuizCategoryIsActive != nil {
		cat.QuizCategoryIsActive = *body.QuizCategoryIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&cat).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.Success(c, "Categoria atualizada", dto.ToQuizCategoryDTO(cat))
}
