package usecases

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/retailops/auditoria-api/internal/domain/entities"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
)

// Uploader envia um PDF ao bucket de armazenamento e retorna a URL pública
type Uploader interface {
	UploadPDF(path string, data io.Reader) (string, error)
}

// DocumentUseCase monta o PDF das páginas digitalizadas e o envia ao bucket.
// A captura e a correção de perspectiva acontecem no cliente; aqui chegam as
// páginas já retificadas, em JPEG.
type DocumentUseCase struct {
	documentRepo *repositories.DocumentRepository
	uploader     Uploader
}

// NewDocumentUseCase cria uma nova instância de DocumentUseCase
func NewDocumentUseCase(documentRepo *repositories.DocumentRepository, uploader Uploader) *DocumentUseCase {
	return &DocumentUseCase{
		documentRepo: documentRepo,
		uploader:     uploader,
	}
}

// CapturePages monta um PDF A4 com uma página por imagem, envia ao bucket e
// registra o documento com a URL pública resultante
func (u *DocumentUseCase) CapturePages(storeID, uploaderID, title string, pages [][]byte) (*entities.Document, error) {
	if uploaderID == "" {
		return nil, fmt.Errorf("%w: envio de documento exige usuário autenticado", entities.ErrAuthentication)
	}
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: título do documento vazio", entities.ErrValidation)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: documento sem páginas", entities.ErrValidation)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	options := gofpdf.ImageOptions{ImageType: "JPG"}
	for i, page := range pages {
		name := fmt.Sprintf("page-%d", i)
		pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(page))
		pdf.AddPage()
		// Largura A4 completa, altura proporcional
		pdf.ImageOptions(name, 0, 0, 210, 0, false, options, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: falha ao montar PDF: %v", entities.ErrValidation, err)
	}

	path := fmt.Sprintf("%s/%s.pdf", storeID, uuid.NewString())
	publicURL, err := u.uploader.UploadPDF(path, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao enviar documento: %v", entities.ErrDataAccess, err)
	}

	document := &entities.Document{
		StoreID:     storeID,
		UploaderID:  uploaderID,
		Title:       title,
		StoragePath: path,
		PublicURL:   publicURL,
		PageCount:   len(pages),
	}
	if err := u.documentRepo.Create(document); err != nil {
		return nil, err
	}
	return document, nil
}

// GetStoreDocuments retorna os documentos de uma loja
func (u *DocumentUseCase) GetStoreDocuments(storeID string) ([]entities.Document, error) {
	if storeID == "" {
		return nil, fmt.Errorf("%w: loja não informada", entities.ErrValidation)
	}
	return u.documentRepo.GetByStore(storeID)
}
