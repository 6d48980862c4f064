package usecases

import (
	"fmt"
	"time"

	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/utils"
)

// AttendanceUseCase implementa os casos de uso de ponto de funcionários
type AttendanceUseCase struct {
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceUseCase cria uma nova instância de AttendanceUseCase
func NewAttendanceUseCase(attendanceRepo *repositories.AttendanceRepository) *AttendanceUseCase {
	return &AttendanceUseCase{
		attendanceRepo: attendanceRepo,
	}
}

// ClockIn abre a jornada de um funcionário em uma loja. Um funcionário não
// pode ter duas jornadas em aberto na mesma loja.
func (u *AttendanceUseCase) ClockIn(userID, storeID string, at time.Time, notes string) (*entities.AttendanceRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: registro de ponto exige usuário autenticado", entities.ErrAuthentication)
	}
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	if at.IsZero() {
		at = time.Now()
	}

	open, err := u.attendanceRepo.GetOpenRecord(userID, storeID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("%w: jornada já aberta desde %s", entities.ErrValidation,
			open.ClockIn.In(utils.GetBrasilLocation()).Format("02/01/2006 15:04"))
	}

	record := &entities.AttendanceRecord{
		UserID:  userID,
		StoreID: storeID,
		ClockIn: at,
		Notes:   notes,
	}
	if err := u.attendanceRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// ClockOut fecha a jornada em aberto do funcionário na loja
func (u *AttendanceUseCase) ClockOut(userID, storeID string, at time.Time) (*entities.AttendanceRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: registro de ponto exige usuário autenticado", entities.ErrAuthentication)
	}
	if at.IsZero() {
		at = time.Now()
	}

	open, err := u.attendanceRepo.GetOpenRecord(userID, storeID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("%w: nenhuma jornada em aberto nesta loja", entities.ErrValidation)
	}
	if at.Before(open.ClockIn) {
		return nil, fmt.Errorf("%w: saída anterior à entrada", entities.ErrValidation)
	}

	if err := u.attendanceRepo.Close(open.ID, at); err != nil {
		return nil, err
	}
	open.ClockOut = &at
	return open, nil
}

// GetRecords retorna registros de ponto com filtros e paginação
func (u *AttendanceUseCase) GetRecords(params map[string]interface{}) ([]entities.AttendanceRecord, int64, error) {
	return u.attendanceRepo.GetRecords(params)
}

// DailySummary retorna os minutos trabalhados por dia ("2006-01-02", no fuso
// de Brasília) de um funcionário no intervalo. Jornadas em aberto contam zero.
func (u *AttendanceUseCase) DailySummary(userID string, from, to time.Time) (map[string]int, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: usuário não informado", entities.ErrValidation)
	}

	records, _, err := u.attendanceRepo.GetRecords(map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
		"limit":   1000,
	})
	if err != nil {
		return nil, err
	}

	summary := make(map[string]int)
	for _, record := range records {
		day := utils.StartOfDay(record.ClockIn).Format("2006-01-02")
		summary[day] += record.WorkedMinutes()
	}
	return summary, nil
}
