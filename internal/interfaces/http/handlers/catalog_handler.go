package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/application/usecases"
)

// CatalogHandler lida com requisições de administração do catálogo mestre
type CatalogHandler struct {
	catalogUseCase *usecases.CatalogUseCase
}

// NewCatalogHandler cria uma nova instância de CatalogHandler
func NewCatalogHandler(catalogUseCase *usecases.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// GetCatalog retorna a árvore ativa do catálogo mestre
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	tree, err := h.catalogUseCase.LoadCatalog()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(tree)
}

type categoryRequest struct {
	Name         string `json:"name"`
	Weight       int    `json:"weight"`
	DisplayOrder int    `json:"display_order"`
}

// CreateCategory cria uma categoria com peso 0-100
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	category, err := h.catalogUseCase.CreateCategory(req.Name, req.Weight, req.DisplayOrder)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(category)
}

// UpdateCategory aplica um patch em uma categoria (nome, peso, ordem)
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	patch := map[string]interface{}{}
	body := struct {
		Name         *string `json:"name"`
		Weight       *int    `json:"weight"`
		DisplayOrder *int    `json:"display_order"`
	}{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if body.Name != nil {
		patch["name"] = *body.Name
	}
	if body.Weight != nil {
		patch["weight"] = *body.Weight
	}
	if body.DisplayOrder != nil {
		patch["display_order"] = *body.DisplayOrder
	}

	if err := h.catalogUseCase.UpdateCategory(c.Params("id"), patch); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(204)
}

// DeactivateCategory desativa logicamente uma categoria
func (h *CatalogHandler) DeactivateCategory(c *fiber.Ctx) error {
	if err := h.catalogUseCase.DeactivateCategory(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(204)
}

type subcategoryRequest struct {
	CategoryID   string `json:"category_id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// CreateSubcategory cria uma subcategoria sob uma categoria
func (h *CatalogHandler) CreateSubcategory(c *fiber.Ctx) error {
	var req subcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	subcategory, err := h.catalogUseCase.CreateSubcategory(req.CategoryID, req.Name, req.DisplayOrder)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(subcategory)
}

// UpdateSubcategory aplica um patch em uma subcategoria (nome, ordem)
func (h *CatalogHandler) UpdateSubcategory(c *fiber.Ctx) error {
	patch := map[string]interface{}{}
	body := struct {
		Name         *string `json:"name"`
		DisplayOrder *int    `json:"display_order"`
	}{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if body.Name != nil {
		patch["name"] = *body.Name
	}
	if body.DisplayOrder != nil {
		patch["display_order"] = *body.DisplayOrder
	}

	if err := h.catalogUseCase.UpdateSubcategory(c.Params("id"), patch); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(204)
}

type questionRequest struct {
	SubcategoryID string `json:"subcategory_id"`
	Text          string `json:"text"`
}

// CreateQuestion cria uma pergunta no fim da subcategoria
func (h *CatalogHandler) CreateQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	question, err := h.catalogUseCase.CreateQuestion(req.SubcategoryID, req.Text)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(question)
}

// UpdateQuestion edita o texto de uma pergunta do catálogo.
// Snapshots de auditorias já criadas não são afetados.
func (h *CatalogHandler) UpdateQuestion(c *fiber.Ctx) error {
	body := struct {
		Text *string `json:"text"`
	}{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	patch := map[string]interface{}{}
	if body.Text != nil {
		patch["text"] = *body.Text
	}

	if err := h.catalogUseCase.UpdateQuestion(c.Params("id"), patch); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(204)
}

// DeactivateQuestion desativa logicamente uma pergunta
func (h *CatalogHandler) DeactivateQuestion(c *fiber.Ctx) error {
	if err := h.catalogUseCase.DeactivateQuestion(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(204)
}
