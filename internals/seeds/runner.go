package seeds

import (
	"gorm.io/gorm"

	quiz "dengueapp_backend/internals/seeds/quiz"
)

// Run executa todos os seeds na ordem de dependência.
func Run(db *gorm.DB) {
	quiz.SeedQuizFromJSON(db, "internals/seeds/quiz/data_quiz.json")
}
