package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	categoryModel "dengueapp_backend/internals/features/quiz/categories/model"
	"dengueapp_backend/internals/features/quiz/questions/dto"
	"dengueapp_backend/internals/features/quiz/questions/model"
	helper "dengueapp_backend/internals/helpers"
)

var validate = validator.New()

type QuizQuestionController struct {
	DB *gorm.DB
}

func NewQuizQuestionController(db *gorm.DB) *QuizQuestionController {
	return &QuizQuestionController{DB: db}
}

// =============================
// ➕ Create Question + Options (admin)
// =============================
func (ctrl *QuizQuestionController) CreateQuizQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := body.ValidateCorrectOption(); err != nil {
		return helper.FromAppError(c, err)
	}

	categoryID, err := uuid.Parse(body.QuizQuestionCategoryID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quiz_question_category_id inválido")
	}

	// categoria precisa existir e estar ativa
	var cat categoryModel.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&cat, "quiz_category_id = ? AND quiz_category_is_active = TRUE", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Categoria não encontrada ou inativa")
		}
		return helper.WritePGError(c, err)
	}

	question := model.QuizQuestionModel{
		QuizQuestionCategoryID:  categoryID,
		QuizQuestionText:        body.QuizQuestionText,
		QuizQuestionExplanation: body.QuizQuestionExplanation,
		QuizQuestionDifficulty:  body.QuizQuestionDifficulty,
		QuizQuestionPoints:      body.QuizQuestionPoints,
		QuizQuestionIsActive:    true,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		options := make([]model.QuizAnswerOptionModel, 0, len(body.Options))
		for _, opt := range body.Options {
			options = append(options, model.QuizAnswerOptionModel{
				QuizAnswerOptionQuestionID: question.QuizQuestionID,
				QuizAnswerOptionText:       opt.QuizAnswerOptionText,
				QuizAnswerOptionIsCorrect:  opt.QuizAnswerOptionIsCorrect,
				QuizAnswerOptionOrder:      opt.QuizAnswerOptionOrder,
			})
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}
		question.Options = options
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pergunta criada", dto.ToQuizQuestionDTO(question))
}

// =============================
// 📄 Get Questions by Category (admin)
// =============================
func (ctrl *QuizQuestionController) GetQuizQuestionsByCategory(c *fiber.Ctx) error {
	categoryID := c.Query("category_id")

	query := ctrl.DB.WithContext(c.Context()).
		Model(&model.QuizQuestionModel{}).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_answer_option_order ASC")
		})
	if categoryID != "" {
		query = query.Where("quiz_question_category_id = ?", categoryID)
	}

	var questions []model.QuizQuestionModel
	if err := query.Order("created_at DESC").Find(&questions).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	dtos := make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, dto.ToQuizQuestionDTO(q))
	}

	return helper.Success(c, "OK", dtos)
}

// =============================
// ✏️ Update Question (admin) — opções são substituídas em bloco
// =============================
func (ctrl *QuizQuestionController) UpdateQuizQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Options").
		First(&question, "quiz_question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pergunta não encontrada")
		}
		return helper.WritePGError(c, err)
	}

	var body dto.UpdateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body da requisição inválido")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := body.ValidateCorrectOption(); err != nil {
		return helper.FromAppError(c, err)
	}

	if body.QuizQuestionText != nil {
		question.QuizQuestionText = *body.QuizQuestionText
	}
	if body.QuizQuestionExplanation != nil {
		question.QuizQuestionExplanation = *body.QuizQuestionExplanation
	}
	if body.QuizQuestionDifficulty != nil {
		question.QuizQuestionDifficulty = *body.QuizQuestionDifficulty
	}
	if body.QuizQuestionPoints != nil {
		question.QuizQuestionPoints = *body.QuizQuestionPoints
	}
	if body.QuizQuestionIsActive != nil {
		question.QuizQuestionIsActive = *body.QuizQuestionIsActive
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Options").Save(&question).Error; err != nil {
			return err
		}
		if body.Options != nil {
			// Troca o conjunto inteiro: respostas antigas de tentativas já
			// finalizadas guardam o texto, não a FK, então é seguro.
			if err := tx.Where("quiz_answer_option_question_id = ?", question.QuizQuestionID).
				Delete(&model.QuizAnswerOptionModel{}).Error; err != nil {
				return err
			}
			options := make([]model.QuizAnswerOptionModel, 0, len(body.Options))
			for _, opt := range body.Options {
				options = append(options, model.QuizAnswerOptionModel{
					QuizAnswerOptionQuestionID: question.QuizQuestionID,
					QuizAnswerOptionText:       opt.QuizAnswerOptionText,
					QuizAnswerOptionIsCorrect:  opt.QuizAnswerOptionIsCorrect,
					QuizAnswerOptionOrder:      opt.QuizAnswerOptionOrder,
				})
			}
			if err := tx.Create(&options).Error; err != nil {
				return err
			}
			question.Options = options
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.Success(c, "Pergunta atualizada", dto.ToQuizQuestionDTO(question))
}

// =============================
// 🚫 Deactivate Question (admin) — some das novas tentativas, preserva histórico
// =============================
func (ctrl *QuizQuestionController) DeactivateQuizQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	result := ctrl.DB.WithContext(c.Context()).
		Model(&model.QuizQuestionModel{}).
		Where("quiz_question_id = ?", id).
		Update("quiz_question_is_active", false)
	if result.Error != nil {
		return helper.WritePGError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pergunta não encontrada")
	}

	return helper.Success(c, "Pergunta desativada", nil)
}
