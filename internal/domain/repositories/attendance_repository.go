package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// AttendanceRepository implementa o acesso a dados de registros de ponto
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository cria uma nova instância de AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// GetOpenRecord retorna o registro de ponto em aberto (sem clock_out) de um
// usuário em uma loja, ou nil se não houver
func (r *AttendanceRepository) GetOpenRecord(userID, storeID string) (*entities.AttendanceRecord, error) {
	var record entities.AttendanceRecord
	err := r.db.
		Where("user_id = ? AND store_id = ? AND clock_out IS NULL", userID, storeID).
		Order("clock_in desc").
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar registro de ponto: %v", entities.ErrDataAccess, err)
	}
	return &record, nil
}

// Create insere um novo registro de ponto (entrada)
func (r *AttendanceRepository) Create(record *entities.AttendanceRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("%w: falha ao registrar entrada: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// Close fecha um registro em aberto gravando o clock_out
func (r *AttendanceRepository) Close(recordID string, clockOut time.Time) error {
	result := r.db.Model(&entities.AttendanceRecord{}).
		Where("id = ? AND clock_out IS NULL", recordID).
		Updates(map[string]interface{}{
			"clock_out":  clockOut,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao registrar saída: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: registro de ponto em aberto %s", entities.ErrNotFound, recordID)
	}
	return nil
}

// GetRecords retorna registros de ponto com filtros e paginação
func (r *AttendanceRepository) GetRecords(params map[string]interface{}) ([]entities.AttendanceRecord, int64, error) {
	var records []entities.AttendanceRecord
	var total int64

	query := r.db.Model(&entities.AttendanceRecord{})

	if userID, ok := params["user_id"].(string); ok && userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if storeID, ok := params["store_id"].(string); ok && storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	if from, ok := params["from"].(time.Time); ok && !from.IsZero() {
		query = query.Where("clock_in >= ?", from)
	}

	if to, ok := params["to"].(time.Time); ok && !to.IsZero() {
		query = query.Where("clock_in <= ?", to)
	}

	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 50
	}

	query.Count(&total)

	offset := (page - 1) * limit
	query = query.Order("clock_in desc").Offset(offset).Limit(limit)

	if err := query.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: falha ao buscar registros de ponto: %v", entities.ErrDataAccess, err)
	}

	return records, total, nil
}
