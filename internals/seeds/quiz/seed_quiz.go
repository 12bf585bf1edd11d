package quiz

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	categoryModel "dengueapp_backend/internals/features/quiz/categories/model"
	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
)

type OptionSeed struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionSeed struct {
	Text        string       `json:"text"`
	Explanation string       `json:"explanation"`
	Difficulty  int          `json:"difficulty"`
	Options     []OptionSeed `json:"options"`
}

type CategorySeed struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Questions   []QuestionSeed `json:"questions"`
}

// SeedQuizFromJSON carrega categorias, perguntas e opções do arquivo.
// Categorias já existentes (por nome) são puladas inteiras.
func SeedQuizFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de quiz:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler arquivo JSON: %v", err)
	}

	var categories []CategorySeed
	if err := json.Unmarshal(file, &categories); err != nil {
		log.Fatalf("❌ Falha ao decodificar JSON: %v", err)
	}

	for _, cat := range categories {
		var existing categoryModel.QuizCategoryModel
		if err := db.Where("quiz_category_name = ?", cat.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Categoria '%s' já existe, pulando.", cat.Name)
			continue
		}

		newCat := categoryModel.QuizCategoryModel{
			QuizCategoryName:        cat.Name,
			QuizCategoryDescription: cat.Description,
			QuizCategoryIsActive:    true,
		}
		if err := db.Create(&newCat).Error; err != nil {
			log.Printf("❌ Falha ao inserir categoria '%s': %v", cat.Name, err)
			continue
		}

		for _, q := range cat.Questions {
			newQ := questionModel.QuizQuestionModel{
				QuizQuestionCategoryID:  newCat.QuizCategoryID,
				QuizQuestionText:        q.Text,
				QuizQuestionExplanation: q.Explanation,
				QuizQuestionDifficulty:  q.Difficulty,
				QuizQuestionIsActive:    true,
			}
			if err := db.Create(&newQ).Error; err != nil {
				log.Printf("❌ Falha ao inserir pergunta '%s': %v", q.Text, err)
				continue
			}

			for i, opt := range q.Options {
				newOpt := questionModel.QuizAnswerOptionModel{
					QuizAnswerOptionQuestionID: newQ.QuizQuestionID,
					QuizAnswerOptionText:       opt.Text,
					QuizAnswerOptionIsCorrect:  opt.IsCorrect,
					QuizAnswerOptionOrder:      i + 1,
				}
				if err := db.Create(&newOpt).Error; err != nil {
					log.Printf("❌ Falha ao inserir opção da pergunta '%s': %v", q.Text, err)
				}
			}
		}

		log.Printf("✅ Categoria '%s' inserida com %d perguntas.", cat.Name, len(cat.Questions))
	}
}
