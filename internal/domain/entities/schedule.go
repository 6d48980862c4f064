package entities

import (
	"time"
)

// WorkSchedule representa a configuração de jornada de uma loja para um dia
// da semana (0 = domingo ... 6 = sábado). Uma linha por (loja, dia): gravações
// repetidas sobrescrevem via upsert.
type WorkSchedule struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	StoreID   string    `json:"store_id" gorm:"column:store_id;type:uuid;uniqueIndex:idx_work_schedules_store_weekday"`
	Weekday   int       `json:"weekday" gorm:"column:weekday;uniqueIndex:idx_work_schedules_store_weekday"`
	OpensAt   string    `json:"opens_at" gorm:"column:opens_at"`
	ClosesAt  string    `json:"closes_at" gorm:"column:closes_at"`
	MinStaff  int       `json:"min_staff" gorm:"column:min_staff"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}
