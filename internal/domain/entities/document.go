package entities

import (
	"time"
)

// Document representa um documento digitalizado (PDF montado a partir das
// páginas fotografadas) enviado ao bucket de armazenamento.
type Document struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	StoreID     string    `json:"store_id" gorm:"column:store_id;type:uuid;index"`
	UploaderID  string    `json:"uploader_id" gorm:"column:uploader_id;type:uuid"`
	Title       string    `json:"title" gorm:"column:title"`
	StoragePath string    `json:"storage_path" gorm:"column:storage_path"`
	PublicURL   string    `json:"public_url" gorm:"column:public_url"`
	PageCount   int       `json:"page_count" gorm:"column:page_count"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}
