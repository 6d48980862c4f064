package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/retailops/auditoria-api/internal/application/usecases"
	"github.com/retailops/auditoria-api/internal/interfaces/http/middleware"
)

// DocumentHandler lida com o envio de documentos digitalizados
type DocumentHandler struct {
	documentUseCase *usecases.DocumentUseCase
}

// NewDocumentHandler cria uma nova instância de DocumentHandler
func NewDocumentHandler(documentUseCase *usecases.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
	}
}

// Upload recebe as páginas já retificadas (multipart, campo "pages", JPEG),
// monta o PDF e envia ao bucket
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requisição multipart inválida"})
	}

	title := c.FormValue("title")
	files := form.File["pages"]

	pages := make([][]byte, 0, len(files))
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Falha ao ler página: " + file.Filename})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Falha ao ler página: " + file.Filename})
		}
		pages = append(pages, data)
	}

	document, err := h.documentUseCase.CapturePages(c.Params("store_id"),
		middleware.CurrentUserID(c), title, pages)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(201).JSON(document)
}

// GetStoreDocuments retorna os documentos de uma loja
func (h *DocumentHandler) GetStoreDocuments(c *fiber.Ctx) error {
	documents, err := h.documentUseCase.GetStoreDocuments(c.Params("store_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"documents": documents})
}
