package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// DocumentRepository implementa o acesso a dados de documentos digitalizados
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository cria uma nova instância de DocumentRepository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

// Create insere um registro de documento enviado
func (r *DocumentRepository) Create(document *entities.Document) error {
	if document.ID == "" {
		document.ID = uuid.NewString()
	}
	document.CreatedAt = time.Now()
	if err := r.db.Create(document).Error; err != nil {
		return fmt.Errorf("%w: falha ao registrar documento: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// GetByStore retorna os documentos de uma loja, mais recentes primeiro
func (r *DocumentRepository) GetByStore(storeID string) ([]entities.Document, error) {
	var documents []entities.Document
	err := r.db.Where("store_id = ?", storeID).Order("created_at desc").Find(&documents).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar documentos: %v", entities.ErrDataAccess, err)
	}
	return documents, nil
}
