package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/application/usecases"
	"github.com/retailops/auditoria-api/internal/interfaces/http/middleware"
)

// AttendanceHandler lida com requisições de ponto de funcionários
type AttendanceHandler struct {
	attendanceUseCase *usecases.AttendanceUseCase
}

// NewAttendanceHandler cria uma nova instância de AttendanceHandler
func NewAttendanceHandler(attendanceUseCase *usecases.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUseCase: attendanceUseCase,
	}
}

type clockRequest struct {
	StoreID string `json:"store_id"`
	At      string `json:"at"`
	Notes   string `json:"notes"`
}

// ClockIn abre a jornada do usuário autenticado na loja
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	var req clockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	at, err := parseClockTime(req.At)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Formato de horário inválido: " + req.At})
	}

	record, err := h.attendanceUseCase.ClockIn(middleware.CurrentUserID(c), req.StoreID, at, req.Notes)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(record)
}

// ClockOut fecha a jornada em aberto do usuário autenticado na loja
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	var req clockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	at, err := parseClockTime(req.At)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Formato de horário inválido: " + req.At})
	}

	record, err := h.attendanceUseCase.ClockOut(middleware.CurrentUserID(c), req.StoreID, at)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

// GetRecords retorna registros de ponto com filtros e paginação
func (h *AttendanceHandler) GetRecords(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	params := map[string]interface{}{
		"page":     page,
		"limit":    limit,
		"user_id":  c.Query("user_id"),
		"store_id": c.Query("store_id"),
	}

	if from, err := parseDateQuery(c.Query("from")); err == nil && !from.IsZero() {
		params["from"] = from
	}
	if to, err := parseDateQuery(c.Query("to")); err == nil && !to.IsZero() {
		params["to"] = to
	}

	records, total, err := h.attendanceUseCase.GetRecords(params)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"records": records,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetDailySummary retorna os minutos trabalhados por dia no intervalo,
// com zeros preenchidos para os dias sem registro
func (h *AttendanceHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		userID = middleware.CurrentUserID(c)
	}

	from, err := parseDateQuery(c.Query("from"))
	if err != nil || from.IsZero() {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'from' inválido"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil || to.IsZero() {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'to' inválido"})
	}

	summary, err := h.attendanceUseCase.DailySummary(userID, from, to.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return errorResponse(c, err)
	}

	// Preencher com zero os dias sem registro para a grade do dashboard
	days := GenerateDateRange(from, to)
	filled := make([]fiber.Map, 0, len(days))
	for _, day := range days {
		filled = append(filled, fiber.Map{
			"date":           day,
			"worked_minutes": summary[day],
		})
	}

	return c.JSON(fiber.Map{
		"user_id": userID,
		"days":    filled,
	})
}

// parseClockTime aceita RFC3339 ou vazio (agora)
func parseClockTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
