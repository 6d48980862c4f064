package entities

import (
	"time"
)

// Store representa uma loja auditável
type Store struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `json:"name" gorm:"column:name"`
	Address   string    `json:"address" gorm:"column:address"`
	Active    bool      `json:"active" gorm:"column:active"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// User representa um funcionário ou auditor do sistema
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	FullName  string    `json:"full_name" gorm:"column:full_name"`
	Email     string    `json:"email" gorm:"column:email"`
	Role      string    `json:"role" gorm:"column:role"`
	Active    bool      `json:"active" gorm:"column:active"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// IsAuditor verifica se o usuário pode conduzir auditorias
func (u *User) IsAuditor() bool {
	return u.Role == "auditor" || u.Role == "admin"
}

// IsAdmin verifica se o usuário administra o catálogo
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
