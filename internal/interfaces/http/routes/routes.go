package routes

import (
	"github.com/retailops/auditoria-api/internal/application/usecases"
	"github.com/retailops/auditoria-api/internal/domain/repositories"
	"github.com/retailops/auditoria-api/internal/infrastructure/cache"
	"github.com/retailops/auditoria-api/internal/interfaces/http/handlers"
	"github.com/retailops/auditoria-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, uploader usecases.Uploader) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	catalogRepo := repositories.NewCatalogRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	userRepo := repositories.NewUserRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)

	// Use Cases
	catalogCache := cache.New()
	catalogUseCase := usecases.NewCatalogUseCase(catalogRepo, catalogCache)
	useCases := &usecases.UseCases{
		Catalog:    catalogUseCase,
		Audit:      usecases.NewAuditUseCase(auditRepo, answerRepo, catalogRepo, catalogUseCase),
		Attendance: usecases.NewAttendanceUseCase(attendanceRepo),
		Schedule:   usecases.NewScheduleUseCase(scheduleRepo),
		Document:   usecases.NewDocumentUseCase(documentRepo, uploader),
	}

	// Handlers
	h := handlers.NewHandlers(useCases, storeRepo, userRepo)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.Auth())

	// Catálogo mestre: leitura pública (dashboards), escrita autenticada
	groups.Public.Get("/catalog", h.Catalog.GetCatalog)
	groups.Catalog.Post("/categories", h.Catalog.CreateCategory)
	groups.Catalog.Put("/categories/:id", h.Catalog.UpdateCategory)
	groups.Catalog.Delete("/categories/:id", h.Catalog.DeactivateCategory)
	groups.Catalog.Post("/subcategories", h.Catalog.CreateSubcategory)
	groups.Catalog.Put("/subcategories/:id", h.Catalog.UpdateSubcategory)
	groups.Catalog.Post("/questions", h.Catalog.CreateQuestion)
	groups.Catalog.Put("/questions/:id", h.Catalog.UpdateQuestion)
	groups.Catalog.Delete("/questions/:id", h.Catalog.DeactivateQuestion)

	// Auditorias
	groups.Audit.Post("/", h.Audit.CreateAudit)
	groups.Audit.Get("/", h.Audit.GetAudits)
	groups.Audit.Get("/:id", h.Audit.GetAudit)
	groups.Audit.Get("/:id/summary", h.Audit.GetSummary)
	groups.Audit.Put("/:id/answers/:question_id", h.Audit.RecordAnswer)
	groups.Audit.Delete("/:id/answers/:question_id", h.Audit.ClearAnswer)
	groups.Audit.Post("/:id/questions", h.Audit.AddAdHocQuestion)
	groups.Audit.Delete("/:id/questions/:question_id", h.Audit.HideQuestion)
	groups.Audit.Post("/:id/finalize", h.Audit.Finalize)
	groups.Audit.Post("/:id/score", h.Audit.UpdateScore)

	// Lojas
	groups.Store.Get("/", h.Store.GetStores)
	groups.Store.Get("/:id", h.Store.GetStore)
	groups.Store.Post("/", h.Store.CreateStore)
	groups.Store.Put("/:id", h.Store.UpdateStore)

	// Usuários
	groups.User.Get("/", h.User.GetUsers)
	groups.User.Get("/me", h.User.GetMe)
	groups.User.Get("/:id", h.User.GetUser)

	// Ponto de funcionários
	groups.Attendance.Post("/clock-in", h.Attendance.ClockIn)
	groups.Attendance.Post("/clock-out", h.Attendance.ClockOut)
	groups.Attendance.Get("/", h.Attendance.GetRecords)
	groups.Attendance.Get("/summary", h.Attendance.GetDailySummary)

	// Jornadas de loja
	groups.Schedule.Put("/:store_id", h.Schedule.UpsertSchedule)
	groups.Schedule.Get("/:store_id", h.Schedule.GetStoreSchedule)
	groups.Schedule.Get("/:store_id/effective", h.Schedule.GetEffectiveSchedule)

	// Documentos digitalizados
	groups.Document.Post("/:store_id", h.Document.Upload)
	groups.Document.Get("/:store_id", h.Document.GetStoreDocuments)
}
