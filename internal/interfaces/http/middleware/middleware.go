package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("CORS_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Route timing for the audit-heavy endpoints
	app.Use(PerformanceLogger())
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public     fiber.Router
	Catalog    fiber.Router
	Audit      fiber.Router
	Store      fiber.Router
	Attendance fiber.Router
	Schedule   fiber.Router
	Document   fiber.Router
	User       fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/")

	// Administração do catálogo (com autenticação)
	catalog := app.Group("/catalog")
	catalog.Use(authMiddleware)

	// Auditorias (com autenticação)
	audit := app.Group("/audits")
	audit.Use(authMiddleware)

	// Lojas (com autenticação)
	store := app.Group("/stores")
	store.Use(authMiddleware)

	// Ponto de funcionários (com autenticação)
	attendance := app.Group("/attendance")
	attendance.Use(authMiddleware)

	// Jornadas de loja (com autenticação)
	schedule := app.Group("/schedules")
	schedule.Use(authMiddleware)

	// Documentos digitalizados (com autenticação)
	document := app.Group("/documents")
	document.Use(authMiddleware)

	// Funcionários e auditores (com autenticação)
	user := app.Group("/users")
	user.Use(authMiddleware)

	return RouteGroups{
		Public:     public,
		Catalog:    catalog,
		Audit:      audit,
		Store:      store,
		Attendance: attendance,
		Schedule:   schedule,
		Document:   document,
		User:       user,
	}
}
