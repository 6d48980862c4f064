package entities

import (
	"time"
)

// AttendanceRecord representa um registro de ponto de um funcionário.
// ClockOut nulo indica jornada em aberto.
type AttendanceRecord struct {
	ID        string     `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID    string     `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	StoreID   string     `json:"store_id" gorm:"column:store_id;type:uuid;index"`
	ClockIn   time.Time  `json:"clock_in" gorm:"column:clock_in"`
	ClockOut  *time.Time `json:"clock_out,omitempty" gorm:"column:clock_out"`
	Notes     string     `json:"notes" gorm:"column:notes"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

// WorkedMinutes retorna os minutos trabalhados do registro.
// Registros em aberto retornam zero.
func (r *AttendanceRecord) WorkedMinutes() int {
	if r.ClockOut == nil || r.ClockOut.Before(r.ClockIn) {
		return 0
	}
	return int(r.ClockOut.Sub(r.ClockIn).Minutes())
}
