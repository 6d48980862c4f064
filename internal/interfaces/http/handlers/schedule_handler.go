package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/application/usecases"
)

// ScheduleHandler lida com requisições de jornadas de loja
type ScheduleHandler struct {
	scheduleUseCase *usecases.ScheduleUseCase
}

// NewScheduleHandler cria uma nova instância de ScheduleHandler
func NewScheduleHandler(scheduleUseCase *usecases.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
	}
}

type scheduleRequest struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
	MinStaff int    `json:"min_staff"`
}

// UpsertSchedule grava a jornada da loja para um dia da semana
func (h *ScheduleHandler) UpsertSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	schedule, err := h.scheduleUseCase.UpsertSchedule(c.Params("store_id"),
		req.Weekday, req.OpensAt, req.ClosesAt, req.MinStaff)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(schedule)
}

// GetStoreSchedule retorna a semana configurada da loja
func (h *ScheduleHandler) GetStoreSchedule(c *fiber.Ctx) error {
	schedules, err := h.scheduleUseCase.GetStoreSchedule(c.Params("store_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"schedules": schedules})
}

// GetEffectiveSchedule retorna a jornada vigente da loja para uma data
func (h *ScheduleHandler) GetEffectiveSchedule(c *fiber.Ctx) error {
	date, err := parseDateQuery(c.Query("date"))
	if err != nil || date.IsZero() {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'date' inválido"})
	}

	schedule, err := h.scheduleUseCase.EffectiveForDate(c.Params("store_id"), date)
	if err != nil {
		return errorResponse(c, err)
	}
	if schedule == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Nenhuma jornada configurada para esta data"})
	}
	return c.JSON(schedule)
}
