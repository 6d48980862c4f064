package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Catalog tables: the three ordered fetches of LoadCatalog
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_categories_active_order ON categories (active, display_order)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_subcategories_category_id ON subcategories (category_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_subcategories_active_order ON subcategories (active, display_order)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questions_subcategory_id ON questions (subcategory_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_questions_active_order ON questions (active, display_order)").Error; err != nil {
		return err
	}

	// Audit tables
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audits_store_id ON audits (store_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audits_auditor_id ON audits (auditor_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audits_state ON audits (state)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audits_date ON audits (date)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_questions_audit_order ON audit_questions (audit_id, display_order)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_answers_audit_question_id ON answers (audit_question_id)").Error; err != nil {
		return err
	}

	// Attendance and schedule tables
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_attendance_user_clock_in ON attendance_records (user_id, clock_in)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_attendance_store_clock_in ON attendance_records (store_id, clock_in)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_attendance_open ON attendance_records (user_id, store_id) WHERE clock_out IS NULL").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_work_schedules_store_weekday ON work_schedules (store_id, weekday)").Error; err != nil {
		return err
	}

	// Documents
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_store_created ON documents (store_id, created_at)").Error; err != nil {
		return err
	}

	return nil
}
