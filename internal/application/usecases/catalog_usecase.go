package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/retailops/auditoria-api/internal/application/domain/model"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/infrastructure/cache"
)

const (
	catalogCacheKey = "catalog:rows"
	catalogCacheTTL = 5 * time.Minute
)

// catalogRows agrupa as três listas do catálogo buscadas de uma vez
type catalogRows struct {
	categories    []entities.Category
	subcategories []entities.Subcategory
	questions     []entities.Question
}

// CatalogUseCase implementa os casos de uso do catálogo mestre: carga da
// hierarquia, administração de categorias/subcategorias/perguntas e pesos
type CatalogUseCase struct {
	catalogRepo *repositories.CatalogRepository
	cache       *cache.Cache
}

// NewCatalogUseCase cria uma nova instância de CatalogUseCase
func NewCatalogUseCase(catalogRepo *repositories.CatalogRepository, c *cache.Cache) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		cache:       c,
	}
}

// LoadCatalog busca as três listas ativas do catálogo e monta a árvore
// Categoria → Subcategoria → Pergunta. As perguntas ficam com id de snapshot
// vazio ("ainda não copiadas"). Se qualquer uma das três buscas falhar, o
// resultado parcial é descartado — tudo ou nada.
//
// As linhas cruas ficam em cache por alguns minutos; a árvore em si é
// remontada a cada chamada, porque a criação de auditoria anexa ids de
// snapshot nos nós e uma árvore compartilhada vazaria esse estado.
func (u *CatalogUseCase) LoadCatalog() (*model.AuditTree, error) {
	rows, err := u.loadRows()
	if err != nil {
		return nil, err
	}
	return assembleCatalogTree(rows), nil
}

func (u *CatalogUseCase) loadRows() (*catalogRows, error) {
	if cached, found := u.cache.Get(catalogCacheKey); found {
		if rows, ok := cached.(*catalogRows); ok {
			return rows, nil
		}
	}

	categories, err := u.catalogRepo.GetActiveCategories()
	if err != nil {
		return nil, err
	}

	subcategories, err := u.catalogRepo.GetActiveSubcategories()
	if err != nil {
		return nil, err
	}

	questions, err := u.catalogRepo.GetActiveQuestions()
	if err != nil {
		return nil, err
	}

	rows := &catalogRows{
		categories:    categories,
		subcategories: subcategories,
		questions:     questions,
	}
	u.cache.Set(catalogCacheKey, rows, catalogCacheTTL)
	return rows, nil
}

func assembleCatalogTree(rows *catalogRows) *model.AuditTree {
	tree := model.NewAuditTree()

	for _, cat := range rows.categories {
		tree.AddCategory(&model.CategoryNode{
			ID:           cat.ID,
			Name:         cat.Name,
			Weight:       cat.Weight,
			DisplayOrder: cat.DisplayOrder,
		})
	}

	for _, sub := range rows.subcategories {
		// Subcategorias cuja categoria foi desativada ficam de fora
		tree.AddSubcategory(&model.SubcategoryNode{
			ID:           sub.ID,
			CategoryID:   sub.CategoryID,
			Name:         sub.Name,
			DisplayOrder: sub.DisplayOrder,
		})
	}

	for _, q := range rows.questions {
		tree.AddQuestion(q.SubcategoryID, &model.QuestionNode{
			SourceQuestionID: q.ID,
			Text:             q.Text,
			DisplayOrder:     q.DisplayOrder,
		})
	}

	return tree
}

// InvalidateCache descarta as linhas em cache após mutação do catálogo
func (u *CatalogUseCase) InvalidateCache() {
	u.cache.Delete(catalogCacheKey)
}

// CurrentShells retorna todas as categorias e subcategorias atuais,
// inclusive desativadas, para a remontagem de auditorias existentes
func (u *CatalogUseCase) CurrentShells() ([]entities.Category, []entities.Subcategory, error) {
	categories, err := u.catalogRepo.GetAllCategories()
	if err != nil {
		return nil, nil, err
	}
	subcategories, err := u.catalogRepo.GetAllSubcategories()
	if err != nil {
		return nil, nil, err
	}
	return categories, subcategories, nil
}

// CreateCategory cria uma categoria com peso 0-100
func (u *CatalogUseCase) CreateCategory(name string, weight, displayOrder int) (*entities.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: nome da categoria vazio", entities.ErrValidation)
	}
	if weight < 0 || weight > 100 {
		return nil, fmt.Errorf("%w: peso %d fora do intervalo 0-100", entities.ErrValidation, weight)
	}
	category := &entities.Category{
		Name:         strings.TrimSpace(name),
		Weight:       weight,
		DisplayOrder: displayOrder,
		Active:       true,
	}
	if err := u.catalogRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	u.InvalidateCache()
	return category, nil
}

// UpdateCategory aplica um patch em uma categoria, validando o peso quando presente
func (u *CatalogUseCase) UpdateCategory(id string, patch map[string]interface{}) error {
	if weight, ok := patch["weight"].(int); ok && (weight < 0 || weight > 100) {
		return fmt.Errorf("%w: peso %d fora do intervalo 0-100", entities.ErrValidation, weight)
	}
	if err := u.catalogRepo.UpdateCategory(id, patch); err != nil {
		return err
	}
	u.InvalidateCache()
	return nil
}

// DeactivateCategory desativa logicamente uma categoria
func (u *CatalogUseCase) DeactivateCategory(id string) error {
	if err := u.catalogRepo.DeactivateCategory(id); err != nil {
		return err
	}
	u.InvalidateCache()
	return nil
}

// CreateSubcategory cria uma subcategoria sob uma categoria
func (u *CatalogUseCase) CreateSubcategory(categoryID, name string, displayOrder int) (*entities.Subcategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: nome da subcategoria vazio", entities.ErrValidation)
	}
	if categoryID == "" {
		return nil, fmt.Errorf("%w: categoria da subcategoria não informada", entities.ErrValidation)
	}
	subcategory := &entities.Subcategory{
		CategoryID:   categoryID,
		Name:         strings.TrimSpace(name),
		DisplayOrder: displayOrder,
		Active:       true,
	}
	if err := u.catalogRepo.CreateSubcategory(subcategory); err != nil {
		return nil, err
	}
	u.InvalidateCache()
	return subcategory, nil
}

// UpdateSubcategory aplica um patch em uma subcategoria
func (u *CatalogUseCase) UpdateSubcategory(id string, patch map[string]interface{}) error {
	if err := u.catalogRepo.UpdateSubcategory(id, patch); err != nil {
		return err
	}
	u.InvalidateCache()
	return nil
}

// CreateQuestion cria uma pergunta no fim da subcategoria
func (u *CatalogUseCase) CreateQuestion(subcategoryID, text string) (*entities.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: texto da pergunta vazio", entities.ErrValidation)
	}
	if subcategoryID == "" {
		return nil, fmt.Errorf("%w: subcategoria da pergunta não informada", entities.ErrValidation)
	}
	maxOrder, err := u.catalogRepo.MaxQuestionOrder(subcategoryID)
	if err != nil {
		return nil, err
	}
	question := &entities.Question{
		SubcategoryID: subcategoryID,
		Text:          strings.TrimSpace(text),
		DisplayOrder:  maxOrder + 1,
		Active:        true,
	}
	if err := u.catalogRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	u.InvalidateCache()
	return question, nil
}

// UpdateQuestion aplica um patch em uma pergunta do catálogo.
// Snapshots já tirados não são afetados: o texto deles é cópia por valor.
func (u *CatalogUseCase) UpdateQuestion(id string, patch map[string]interface{}) error {
	if err := u.catalogRepo.UpdateQuestion(id, patch); err != nil {
		return err
	}
	u.InvalidateCache()
	return nil
}

// DeactivateQuestion desativa logicamente uma pergunta
func (u *CatalogUseCase) DeactivateQuestion(id string) error {
	if err := u.catalogRepo.DeactivateQuestion(id); err != nil {
		return err
	}
	u.InvalidateCache()
	return nil
}
