package entities

import (
	"time"
)

// Category representa uma categoria do catálogo mestre de auditoria.
// O peso (0-100) é atribuído pelo administrador e usado na nota ponderada.
// Categorias nunca são excluídas fisicamente, apenas desativadas.
type Category struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name         string    `json:"name" gorm:"column:name"`
	Weight       int       `json:"weight" gorm:"column:weight"`
	DisplayOrder int       `json:"display_order" gorm:"column:display_order"`
	Active       bool      `json:"active" gorm:"column:active"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID"`
}

// Subcategory representa uma subcategoria dentro de uma categoria do catálogo
type Subcategory struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	CategoryID   string    `json:"category_id" gorm:"column:category_id;type:uuid"`
	Name         string    `json:"name" gorm:"column:name"`
	DisplayOrder int       `json:"display_order" gorm:"column:display_order"`
	Active       bool      `json:"active" gorm:"column:active"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:SubcategoryID"`
}

// Question representa uma pergunta do catálogo mestre.
// A desativação é sempre lógica (flag), nunca física, porque snapshots
// históricos de auditoria referenciam o texto copiado no momento da criação.
type Question struct {
	ID            string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	SubcategoryID string    `json:"subcategory_id" gorm:"column:subcategory_id;type:uuid"`
	Text          string    `json:"text" gorm:"column:text"`
	DisplayOrder  int       `json:"display_order" gorm:"column:display_order"`
	Active        bool      `json:"active" gorm:"column:active"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}
