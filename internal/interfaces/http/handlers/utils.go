package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/domain/entities"
)

// GenerateDateRange gera um array de strings de datas no formato "YYYY-MM-DD"
// para todas as datas no intervalo from até to (inclusive)
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	// Normalizar as datas para início do dia
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	// Calcular o número de dias entre as datas
	duration := to.Sub(from)
	days := int(duration.Hours()/24) + 1 // +1 para incluir o dia final

	// Gerar array de datas
	result := make([]string, days)
	currentDate := from

	for i := 0; i < days; i++ {
		result[i] = currentDate.Format("2006-01-02")
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return result
}

// errorResponse mapeia os erros de domínio para o status HTTP e devolve o
// corpo de erro padrão {"error": mensagem}
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrValidation):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrAuthentication):
		status = fiber.StatusUnauthorized
	case errors.Is(err, entities.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, entities.ErrDataAccess):
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// parseDateQuery converte um parâmetro de query de data, aceitando RFC3339
// ou apenas "2006-01-02". Vazio retorna zero sem erro.
func parseDateQuery(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
