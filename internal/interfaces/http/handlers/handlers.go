package handlers

import (
	"github.com/retailops/auditoria-api/internal/application/usecases"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
)

// Handlers agrega os handlers HTTP da API
type Handlers struct {
	Audit      *AuditHandler
	Catalog    *CatalogHandler
	Store      *StoreHandler
	Attendance *AttendanceHandler
	Schedule   *ScheduleHandler
	Document   *DocumentHandler
	User       *UserHandler
}

// NewHandlers constrói todos os handlers a partir dos casos de uso
func NewHandlers(useCases *usecases.UseCases, storeRepo *repositories.StoreRepository, userRepo *repositories.UserRepository) *Handlers {
	return &Handlers{
		Audit:      NewAuditHandler(useCases.Audit),
		Catalog:    NewCatalogHandler(useCases.Catalog),
		Store:      NewStoreHandler(storeRepo),
		Attendance: NewAttendanceHandler(useCases.Attendance),
		Schedule:   NewScheduleHandler(useCases.Schedule),
		Document:   NewDocumentHandler(useCases.Document),
		User:       NewUserHandler(userRepo),
	}
}
