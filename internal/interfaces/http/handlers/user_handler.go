package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/interfaces/http/middleware"
)

// UserHandler lida com requisições de funcionários e auditores
type UserHandler struct {
	userRepo *repositories.UserRepository
}

// NewUserHandler cria uma nova instância de UserHandler
func NewUserHandler(userRepo *repositories.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// GetUsers retorna usuários ativos, opcionalmente filtrados por papel
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	role := c.Query("role")

	var err error
	var users interface{}
	if role != "" {
		users, err = h.userRepo.FindByRole(role)
	} else {
		users, err = h.userRepo.FindActive()
	}
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUser retorna um usuário pelo id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userRepo.FindByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// GetMe retorna o usuário autenticado e o que o papel dele permite
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.userRepo.FindByID(middleware.CurrentUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"user":               user,
		"can_audit":          user.IsAuditor(),
		"can_manage_catalog": user.IsAdmin(),
	})
}
