package migrations

import (
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate cria ou atualiza o esquema de todas as tabelas do sistema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Category{},
		&entities.Subcategory{},
		&entities.Question{},
		&entities.Store{},
		&entities.User{},
		&entities.Audit{},
		&entities.AuditQuestion{},
		&entities.Answer{},
		&entities.AttendanceRecord{},
		&entities.WorkSchedule{},
		&entities.Document{},
	)
}
