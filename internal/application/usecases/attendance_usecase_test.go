package usecases

import (
	"testing"
	"time"

	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceUseCase(t *testing.T) *AttendanceUseCase {
	t.Helper()
	db := setupTestDB(t)
	return NewAttendanceUseCase(repositories.NewAttendanceRepository(db))
}

func TestClockInRejectsSecondOpenShift(t *testing.T) {
	uc := newAttendanceUseCase(t)
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, utils.GetBrasilLocation())

	record, err := uc.ClockIn("func-1", "loja-7", start, "")
	require.NoError(t, err)
	assert.Nil(t, record.ClockOut)

	_, err = uc.ClockIn("func-1", "loja-7", start.Add(time.Hour), "")
	assert.ErrorIs(t, err, entities.ErrValidation)

	// Em outra loja a jornada abre normalmente
	_, err = uc.ClockIn("func-1", "loja-9", start.Add(time.Hour), "")
	assert.NoError(t, err)
}

func TestClockOutClosesOpenShift(t *testing.T) {
	uc := newAttendanceUseCase(t)
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, utils.GetBrasilLocation())

	_, err := uc.ClockIn("func-1", "loja-7", start, "")
	require.NoError(t, err)

	closed, err := uc.ClockOut("func-1", "loja-7", start.Add(8*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOut)
	assert.Equal(t, 480, closed.WorkedMinutes())

	// Jornada fechada não fecha de novo
	_, err = uc.ClockOut("func-1", "loja-7", start.Add(9*time.Hour))
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestClockOutRejectsBackwardsTime(t *testing.T) {
	uc := newAttendanceUseCase(t)
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, utils.GetBrasilLocation())

	_, err := uc.ClockIn("func-1", "loja-7", start, "")
	require.NoError(t, err)

	_, err = uc.ClockOut("func-1", "loja-7", start.Add(-time.Minute))
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestDailySummaryGroupsByBrasilDay(t *testing.T) {
	uc := newAttendanceUseCase(t)
	loc := utils.GetBrasilLocation()
	monday := time.Date(2026, 3, 9, 8, 0, 0, 0, loc)
	tuesday := monday.AddDate(0, 0, 1)

	_, err := uc.ClockIn("func-1", "loja-7", monday, "")
	require.NoError(t, err)
	_, err = uc.ClockOut("func-1", "loja-7", monday.Add(6*time.Hour))
	require.NoError(t, err)

	_, err = uc.ClockIn("func-1", "loja-7", tuesday, "")
	require.NoError(t, err)
	_, err = uc.ClockOut("func-1", "loja-7", tuesday.Add(4*time.Hour+30*time.Minute))
	require.NoError(t, err)

	// Jornada em aberto na quarta conta zero
	_, err = uc.ClockIn("func-1", "loja-7", tuesday.AddDate(0, 0, 1), "")
	require.NoError(t, err)

	summary, err := uc.DailySummary("func-1", monday.AddDate(0, 0, -1), monday.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 360, summary["2026-03-09"])
	assert.Equal(t, 270, summary["2026-03-10"])
	assert.Equal(t, 0, summary["2026-03-11"])
}
