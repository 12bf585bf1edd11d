package database

import (
	"log"

	certModel "dengueapp_backend/internals/features/certificates/model"
	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
	categoryModel "dengueapp_backend/internals/features/quiz/categories/model"
	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
	userModel "dengueapp_backend/internals/features/users/user/model"
)

// MigrateAll roda o AutoMigrate de todos os models e em seguida os índices
// que o GORM não expressa por tag.
func MigrateAll() {
	log.Println("📦 Rodando migrations...")

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&categoryModel.QuizCategoryModel{},
		&questionModel.QuizQuestionModel{},
		&questionModel.QuizAnswerOptionModel{},
		&attemptModel.QuizAttemptModel{},
		&attemptModel.QuizUserAnswerModel{},
		&certModel.CertificateModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate falhou: %v", err)
	}

	// índice único parcial: no máximo um certificado ativo por usuário
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_certificates_active_per_user
		ON certificates (certificate_user_id)
		WHERE certificate_status = 'active';
	`).Error; err != nil {
		log.Fatalf("❌ Falha ao criar índice uq_certificates_active_per_user: %v", err)
	}

	log.Println("✅ Migrations OK.")
}
