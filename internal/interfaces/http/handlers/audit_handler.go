package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/application/usecases"
	"github.com/retailops/auditoria-api/internal/interfaces/http/middleware"
)

// AuditHandler lida com requisições do ciclo de vida de auditorias
type AuditHandler struct {
	auditUseCase *usecases.AuditUseCase
}

// NewAuditHandler cria uma nova instância de AuditHandler
func NewAuditHandler(auditUseCase *usecases.AuditUseCase) *AuditHandler {
	return &AuditHandler{
		auditUseCase: auditUseCase,
	}
}

type createAuditRequest struct {
	StoreID    string `json:"store_id"`
	Date       string `json:"date"`
	Recipients string `json:"recipients"`
	Notes      string `json:"notes"`
}

// CreateAudit cria a auditoria com o snapshot completo do catálogo e
// retorna a árvore pronta para receber respostas
func (h *AuditHandler) CreateAudit(c *fiber.Ctx) error {
	var req createAuditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	date, err := parseDateQuery(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Formato de data inválido: " + req.Date})
	}

	session, err := h.auditUseCase.CreateAudit(req.StoreID, middleware.CurrentUserID(c), date, req.Recipients, req.Notes)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"audit": session.Audit,
		"tree":  session.Tree,
	})
}

// GetAudits retorna auditorias com filtros e paginação
// @Summary Lista auditorias
// @Description Retorna auditorias com filtros por loja, auditor, estado e período
// @Tags audits
// @Accept json
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Param store_id query string false "ID da loja"
// @Param state query string false "Estado (in_progress, completed)"
// @Success 200 {object} map[string]interface{} "Lista de auditorias"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /audits [get]
func (h *AuditHandler) GetAudits(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'page' inválido"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'limit' inválido"})
	}

	params := map[string]interface{}{
		"page":           page,
		"limit":          limit,
		"store_id":       c.Query("store_id"),
		"auditor_id":     c.Query("auditor_id"),
		"state":          c.Query("state"),
		"sort_by":        c.Query("sort_by"),
		"sort_direction": c.Query("sort_direction"),
	}

	if from, err := parseDateQuery(c.Query("from")); err == nil && !from.IsZero() {
		params["from"] = from
	}
	if to, err := parseDateQuery(c.Query("to")); err == nil && !to.IsZero() {
		params["to"] = to
	}

	audits, total, err := h.auditUseCase.GetAudits(params)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"audits": audits,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// GetAudit recarrega uma auditoria existente com árvore e resumo
func (h *AuditHandler) GetAudit(c *fiber.Ctx) error {
	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	summary, err := h.auditUseCase.Summarize(session)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"audit":   session.Audit,
		"tree":    session.Tree,
		"summary": summary,
	})
}

// GetSummary retorna apenas o resumo de conformidade da auditoria
func (h *AuditHandler) GetSummary(c *fiber.Ctx) error {
	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	summary, err := h.auditUseCase.Summarize(session)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(summary)
}

type recordAnswerRequest struct {
	Passed           bool   `json:"passed"`
	Comment          string `json:"comment"`
	CorrectiveAction string `json:"corrective_action"`
	Revision         int64  `json:"revision"`
}

// RecordAnswer grava a resposta de uma pergunta do snapshot (upsert).
// Revision é o timestamp lógico do cliente; zero deixa a sessão atribuir.
func (h *AuditHandler) RecordAnswer(c *fiber.Ctx) error {
	var req recordAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	answer, err := h.auditUseCase.RecordAnswer(session, c.Params("question_id"),
		req.Passed, req.Comment, req.CorrectiveAction, req.Revision)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"answer":  answer,
		"summary": usecases.Summarize(session.Tree),
	})
}

type adHocQuestionRequest struct {
	SubcategoryID string `json:"subcategory_id"`
	Text          string `json:"text"`
}

// AddAdHocQuestion acrescenta uma pergunta avulsa à auditoria e ao catálogo
func (h *AuditHandler) AddAdHocQuestion(c *fiber.Ctx) error {
	var req adHocQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	node, err := h.auditUseCase.AddAdHocQuestion(session, req.SubcategoryID, req.Text)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(201).JSON(node)
}

// HideQuestion oculta uma pergunta apenas desta auditoria
func (h *AuditHandler) HideQuestion(c *fiber.Ctx) error {
	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.auditUseCase.HideQuestion(session, c.Params("question_id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(204)
}

// ClearAnswer desfaz a resposta de uma pergunta do snapshot
func (h *AuditHandler) ClearAnswer(c *fiber.Ctx) error {
	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.auditUseCase.ClearAnswer(session, c.Params("question_id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(204)
}

type finalizeRequest struct {
	Notes *string `json:"notes"`
}

// Finalize congela a nota ponderada e marca a auditoria como concluída
func (h *AuditHandler) Finalize(c *fiber.Ctx) error {
	var req finalizeRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	summary, err := h.auditUseCase.Finalize(session, req.Notes)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"audit":   session.Audit,
		"summary": summary,
	})
}

// UpdateScore re-persiste a nota após edições do modo de revisão,
// sem alterar o estado da auditoria
func (h *AuditHandler) UpdateScore(c *fiber.Ctx) error {
	session, err := h.auditUseCase.LoadAudit(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	summary, err := h.auditUseCase.UpdateReviewedAudit(session)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"audit":   session.Audit,
		"summary": summary,
	})
}
