package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// StoreRepository implementa o acesso a dados de lojas
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository cria uma nova instância de StoreRepository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{
		db: db,
	}
}

// GetStores retorna as lojas, por padrão apenas as ativas
func (r *StoreRepository) GetStores(includeInactive bool) ([]entities.Store, error) {
	var stores []entities.Store
	query := r.db.Order("name asc")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar lojas: %v", entities.ErrDataAccess, err)
	}
	return stores, nil
}

// GetStore retorna uma loja pelo id
func (r *StoreRepository) GetStore(id string) (*entities.Store, error) {
	var store entities.Store
	err := r.db.Where("id = ?", id).First(&store).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: loja %s", entities.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar loja: %v", entities.ErrDataAccess, err)
	}
	return &store, nil
}

// CreateStore insere uma nova loja
func (r *StoreRepository) CreateStore(store *entities.Store) error {
	if store.ID == "" {
		store.ID = uuid.NewString()
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("%w: falha ao criar loja: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// UpdateStore aplica um patch de campos em uma loja existente
func (r *StoreRepository) UpdateStore(id string, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now()
	result := r.db.Model(&entities.Store{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao atualizar loja: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: loja %s", entities.ErrNotFound, id)
	}
	return nil
}
