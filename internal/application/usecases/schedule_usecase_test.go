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

func newScheduleUseCase(t *testing.T) *ScheduleUseCase {
	t.Helper()
	db := setupTestDB(t)
	return NewScheduleUseCase(repositories.NewScheduleRepository(db))
}

func TestUpsertScheduleValidation(t *testing.T) {
	uc := newScheduleUseCase(t)

	cases := []struct {
		name     string
		storeID  string
		weekday  int
		opensAt  string
		closesAt string
		minStaff int
	}{
		{"loja vazia", "", 1, "08:00", "18:00", 2},
		{"dia da semana negativo", "loja-7", -1, "08:00", "18:00", 2},
		{"dia da semana acima de sábado", "loja-7", 7, "08:00", "18:00", 2},
		{"abertura inválida", "loja-7", 1, "8h00", "18:00", 2},
		{"fechamento inválido", "loja-7", 1, "08:00", "25:00", 2},
		{"abertura depois do fechamento", "loja-7", 1, "18:00", "08:00", 2},
		{"equipe mínima negativa", "loja-7", 1, "08:00", "18:00", -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UpsertSchedule(tc.storeID, tc.weekday, tc.opensAt, tc.closesAt, tc.minStaff)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
}

func TestUpsertScheduleOverwritesPerStoreWeekday(t *testing.T) {
	uc := newScheduleUseCase(t)

	_, err := uc.UpsertSchedule("loja-7", 1, "08:00", "18:00", 2)
	require.NoError(t, err)
	_, err = uc.UpsertSchedule("loja-7", 1, "09:00", "19:00", 3)
	require.NoError(t, err)
	_, err = uc.UpsertSchedule("loja-7", 2, "08:00", "18:00", 2)
	require.NoError(t, err)

	week, err := uc.GetStoreSchedule("loja-7")
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, 1, week[0].Weekday)
	assert.Equal(t, "09:00", week[0].OpensAt)
	assert.Equal(t, 3, week[0].MinStaff)
	assert.Equal(t, 2, week[1].Weekday)
}

func TestEffectiveForDateUsesBrasilWeekday(t *testing.T) {
	uc := newScheduleUseCase(t)

	// Segunda-feira (weekday 1)
	_, err := uc.UpsertSchedule("loja-7", 1, "08:00", "18:00", 2)
	require.NoError(t, err)

	monday := time.Date(2026, 3, 9, 10, 0, 0, 0, utils.GetBrasilLocation())
	schedule, err := uc.EffectiveForDate("loja-7", monday)
	require.NoError(t, err)
	require.NotNil(t, schedule)
	assert.Equal(t, "08:00", schedule.OpensAt)

	// Terça sem jornada configurada
	schedule, err = uc.EffectiveForDate("loja-7", monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, schedule)
}
