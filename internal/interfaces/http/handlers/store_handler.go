package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
)

// StoreHandler lida com requisições de lojas
type StoreHandler struct {
	storeRepo *repositories.StoreRepository
}

// NewStoreHandler cria uma nova instância de StoreHandler
func NewStoreHandler(storeRepo *repositories.StoreRepository) *StoreHandler {
	return &StoreHandler{
		storeRepo: storeRepo,
	}
}

// GetStores retorna as lojas, por padrão apenas as ativas
func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive", "false") == "true"

	stores, err := h.storeRepo.GetStores(includeInactive)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"stores": stores})
}

// GetStore retorna uma loja pelo id
func (h *StoreHandler) GetStore(c *fiber.Ctx) error {
	store, err := h.storeRepo.GetStore(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(store)
}

type storeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateStore insere uma nova loja
func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var req storeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if req.Name == "" {
		return c.Status(422).JSON(fiber.Map{"error": "Nome da loja vazio"})
	}

	store := &entities.Store{
		Name:    req.Name,
		Address: req.Address,
		Active:  true,
	}
	if err := h.storeRepo.CreateStore(store); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(store)
}

// UpdateStore aplica um patch em uma loja
func (h *StoreHandler) UpdateStore(c *fiber.Ctx) error {
	body := struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Active  *bool   `json:"active"`
	}{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	patch := map[string]interface{}{}
	if body.Name != nil {
		patch["name"] = *body.Name
	}
	if body.Address != nil {
		patch["address"] = *body.Address
	}
	if body.Active != nil {
		patch["active"] = *body.Active
	}

	if err := h.storeRepo.UpdateStore(c.Params("id"), patch); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(204)
}
