package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleRepository implementa o acesso a dados das jornadas de loja
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository cria uma nova instância de ScheduleRepository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Upsert grava a jornada com chave de conflito (store_id, weekday):
// uma linha por loja e dia da semana, gravações repetidas sobrescrevem
func (r *ScheduleRepository) Upsert(schedule *entities.WorkSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	now := time.Now()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	schedule.UpdatedAt = now

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "store_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"opens_at", "closes_at", "min_staff", "updated_at",
		}),
	}).Create(schedule).Error
	if err != nil {
		return fmt.Errorf("%w: falha ao gravar jornada: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// GetByStore retorna as jornadas de uma loja ordenadas por dia da semana
func (r *ScheduleRepository) GetByStore(storeID string) ([]entities.WorkSchedule, error) {
	var schedules []entities.WorkSchedule
	err := r.db.Where("store_id = ?", storeID).Order("weekday asc").Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar jornadas: %v", entities.ErrDataAccess, err)
	}
	return schedules, nil
}

// GetForWeekday retorna a jornada de uma loja para um dia da semana, ou nil
func (r *ScheduleRepository) GetForWeekday(storeID string, weekday int) (*entities.WorkSchedule, error) {
	var schedule entities.WorkSchedule
	err := r.db.Where("store_id = ? AND weekday = ?", storeID, weekday).First(&schedule).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar jornada: %v", entities.ErrDataAccess, err)
	}
	return &schedule, nil
}
