package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"gorm.io/gorm"
)

// CatalogRepository implementa o acesso a dados do catálogo mestre
// (categorias, subcategorias e perguntas)
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository cria uma nova instância de CatalogRepository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// GetActiveCategories retorna as categorias ativas ordenadas por display_order
func (r *CatalogRepository) GetActiveCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Where("active = ?", true).Order("display_order asc").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar categorias: %v", entities.ErrDataAccess, err)
	}
	return categories, nil
}

// GetAllCategories retorna todas as categorias, inclusive desativadas,
// ordenadas por display_order. Usado na remontagem de auditorias antigas,
// onde o snapshot pode referenciar categorias já desativadas.
func (r *CatalogRepository) GetAllCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("display_order asc").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar categorias: %v", entities.ErrDataAccess, err)
	}
	return categories, nil
}

// GetActiveSubcategories retorna as subcategorias ativas ordenadas por display_order
func (r *CatalogRepository) GetActiveSubcategories() ([]entities.Subcategory, error) {
	var subcategories []entities.Subcategory
	err := r.db.Where("active = ?", true).Order("display_order asc").Find(&subcategories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar subcategorias: %v", entities.ErrDataAccess, err)
	}
	return subcategories, nil
}

// GetAllSubcategories retorna todas as subcategorias ordenadas por display_order
func (r *CatalogRepository) GetAllSubcategories() ([]entities.Subcategory, error) {
	var subcategories []entities.Subcategory
	err := r.db.Order("display_order asc").Find(&subcategories).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar subcategorias: %v", entities.ErrDataAccess, err)
	}
	return subcategories, nil
}

// GetActiveQuestions retorna as perguntas ativas ordenadas por display_order
func (r *CatalogRepository) GetActiveQuestions() ([]entities.Question, error) {
	var questions []entities.Question
	err := r.db.Where("active = ?", true).Order("display_order asc").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar perguntas: %v", entities.ErrDataAccess, err)
	}
	return questions, nil
}

// GetQuestion retorna uma pergunta do catálogo pelo id
func (r *CatalogRepository) GetQuestion(id string) (*entities.Question, error) {
	var question entities.Question
	err := r.db.Where("id = ?", id).First(&question).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: pergunta %s", entities.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao buscar pergunta: %v", entities.ErrDataAccess, err)
	}
	return &question, nil
}

// CreateCategory insere uma nova categoria
func (r *CatalogRepository) CreateCategory(category *entities.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("%w: falha ao criar categoria: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// UpdateCategory aplica um patch de campos em uma categoria existente
func (r *CatalogRepository) UpdateCategory(id string, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now()
	result := r.db.Model(&entities.Category{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao atualizar categoria: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: categoria %s", entities.ErrNotFound, id)
	}
	return nil
}

// DeactivateCategory desativa logicamente uma categoria.
// Nunca há exclusão física de linhas do catálogo.
func (r *CatalogRepository) DeactivateCategory(id string) error {
	return r.UpdateCategory(id, map[string]interface{}{"active": false})
}

// CreateSubcategory insere uma nova subcategoria
func (r *CatalogRepository) CreateSubcategory(subcategory *entities.Subcategory) error {
	if subcategory.ID == "" {
		subcategory.ID = uuid.NewString()
	}
	subcategory.CreatedAt = time.Now()
	subcategory.UpdatedAt = subcategory.CreatedAt
	if err := r.db.Create(subcategory).Error; err != nil {
		return fmt.Errorf("%w: falha ao criar subcategoria: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// UpdateSubcategory aplica um patch de campos em uma subcategoria existente
func (r *CatalogRepository) UpdateSubcategory(id string, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now()
	result := r.db.Model(&entities.Subcategory{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao atualizar subcategoria: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: subcategoria %s", entities.ErrNotFound, id)
	}
	return nil
}

// CreateQuestion insere uma nova pergunta no catálogo mestre
func (r *CatalogRepository) CreateQuestion(question *entities.Question) error {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	question.CreatedAt = time.Now()
	question.UpdatedAt = question.CreatedAt
	if err := r.db.Create(question).Error; err != nil {
		return fmt.Errorf("%w: falha ao criar pergunta: %v", entities.ErrDataAccess, err)
	}
	return nil
}

// UpdateQuestion aplica um patch de campos em uma pergunta existente
func (r *CatalogRepository) UpdateQuestion(id string, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now()
	result := r.db.Model(&entities.Question{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("%w: falha ao atualizar pergunta: %v", entities.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: pergunta %s", entities.ErrNotFound, id)
	}
	return nil
}

// DeactivateQuestion desativa logicamente uma pergunta do catálogo
func (r *CatalogRepository) DeactivateQuestion(id string) error {
	return r.UpdateQuestion(id, map[string]interface{}{"active": false})
}

// MaxQuestionOrder retorna o maior display_order entre as perguntas de uma
// subcategoria. Subcategoria sem perguntas retorna zero.
func (r *CatalogRepository) MaxQuestionOrder(subcategoryID string) (int, error) {
	var max *int
	err := r.db.Model(&entities.Question{}).
		Where("subcategory_id = ?", subcategoryID).
		Select("MAX(display_order)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("%w: falha ao buscar ordem máxima: %v", entities.ErrDataAccess, err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
