package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estacionamientos-api/internal/application/abonos"
	"github.com/jhoicas/Estacionamientos-api/internal/application/auth"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BackfillUC  *abonos.BackfillPeriodosUseCase
	PeriodoRepo repository.PeriodoAbonoRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Administración (Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	abonoHandler := NewAbonoHandler(deps.BackfillUC, deps.PeriodoRepo)
	admin.Post("/abonos/periodos/backfill", abonoHandler.BackfillPeriodos)
	admin.Get("/abonos/periodos", abonoHandler.ListPeriodos)
}
