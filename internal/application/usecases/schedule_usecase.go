package usecases

import (
	"fmt"
	"time"

	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/utils"
)

// ScheduleUseCase implementa a configuração de jornadas de loja
type ScheduleUseCase struct {
	scheduleRepo *repositories.ScheduleRepository
}

// NewScheduleUseCase cria uma nova instância de ScheduleUseCase
func NewScheduleUseCase(scheduleRepo *repositories.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{
		scheduleRepo: scheduleRepo,
	}
}

// UpsertSchedule grava a jornada de uma loja para um dia da semana
// (0 = domingo ... 6 = sábado). Horários no formato "15:04".
func (u *ScheduleUseCase) UpsertSchedule(storeID string, weekday int, opensAt, closesAt string, minStaff int) (*entities.WorkSchedule, error) {
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: dia da semana %d fora do intervalo 0-6", entities.ErrValidation, weekday)
	}
	opens, err := time.Parse("15:04", opensAt)
	if err != nil {
		return nil, fmt.Errorf("%w: horário de abertura inválido: %s", entities.ErrValidation, opensAt)
	}
	closes, err := time.Parse("15:04", closesAt)
	if err != nil {
		return nil, fmt.Errorf("%w: horário de fechamento inválido: %s", entities.ErrValidation, closesAt)
	}
	if !opens.Before(closes) {
		return nil, fmt.Errorf("%w: abertura %s não antecede fechamento %s", entities.ErrValidation, opensAt, closesAt)
	}
	if minStaff < 0 {
		return nil, fmt.Errorf("%w: equipe mínima negativa", entities.ErrValidation)
	}

	schedule := &entities.WorkSchedule{
		StoreID:  storeID,
		Weekday:  weekday,
		OpensAt:  opensAt,
		ClosesAt: closesAt,
		MinStaff: minStaff,
	}
	if err := u.scheduleRepo.Upsert(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetStoreSchedule retorna a semana configurada de uma loja
func (u *ScheduleUseCase) GetStoreSchedule(storeID string) ([]entities.WorkSchedule, error) {
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	return u.scheduleRepo.GetByStore(storeID)
}

// EffectiveForDate retorna a jornada vigente de uma loja para uma data,
// pelo dia da semana no fuso de Brasília. Sem jornada configurada retorna nil.
func (u *ScheduleUseCase) EffectiveForDate(storeID string, date time.Time) (*entities.WorkSchedule, error) {
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	weekday := int(date.In(utils.GetBrasilLocation()).Weekday())
	return u.scheduleRepo.GetForWeekday(storeID, weekday)
}
