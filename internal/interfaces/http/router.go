package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajiloprint/press-api/internal/application/auth"
	"github.com/sajiloprint/press-api/internal/application/export"
	appledger "github.com/sajiloprint/press-api/internal/application/ledger"
	"github.com/sajiloprint/press-api/internal/application/usecase"
	"github.com/sajiloprint/press-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	JobUC       *usecase.JobUseCase
	PaperUC     *usecase.PaperUseCase
	StockUC     *appledger.StockEntryUseCase
	QuotationUC *usecase.QuotationUseCase
	EstimateUC  *usecase.EstimateUseCase
	ChallanUC   *usecase.ChallanUseCase
	EquipmentUC *usecase.EquipmentUseCase
	SettingsUC  *usecase.SettingsUseCase
	ExportUC    *export.UseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Jobs
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Delete("/:id", jobHandler.Delete)

	// Papers + their ledgers and exports
	papers := protected.Group("/papers")
	paperHandler := NewPaperHandler(deps.PaperUC, deps.ExportUC)
	stockHandler := NewStockHandler(deps.StockUC)
	papers.Post("/", paperHandler.Create)
	papers.Get("/", paperHandler.List)
	papers.Get("/:id", paperHandler.GetByID)
	papers.Put("/:id", paperHandler.Update)
	papers.Delete("/:id", paperHandler.Delete)
	papers.Get("/:id/ledger.pdf", paperHandler.LedgerPDF)
	papers.Get("/:id/ledger.xlsx", paperHandler.LedgerXLSX)

	// Paper stock ledger
	stock := protected.Group("/paper-stock")
	stock.Get("/", stockHandler.ListByPaper)
	stock.Post("/", stockHandler.Create)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)

	// Quotations
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.ExportUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationHandler.Delete)
	quotations.Get("/:id/pdf", quotationHandler.PDF)

	// Estimates
	estimates := protected.Group("/estimates")
	estimateHandler := NewEstimateHandler(deps.EstimateUC)
	estimates.Post("/", estimateHandler.Create)
	estimates.Get("/", estimateHandler.List)
	estimates.Get("/:id", estimateHandler.GetByID)
	estimates.Put("/:id", estimateHandler.Update)
	estimates.Delete("/:id", estimateHandler.Delete)

	// Challans
	challans := protected.Group("/challans")
	challanHandler := NewChallanHandler(deps.ChallanUC, deps.ExportUC)
	challans.Post("/", challanHandler.Create)
	challans.Get("/", challanHandler.List)
	challans.Get("/:id", challanHandler.GetByID)
	challans.Put("/:id", challanHandler.Update)
	challans.Delete("/:id", challanHandler.Delete)
	challans.Get("/:id/pdf", challanHandler.PDF)

	// Equipment
	equipmentGroup := protected.Group("/equipment")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipmentGroup.Post("/", equipmentHandler.Create)
	equipmentGroup.Get("/", equipmentHandler.List)
	equipmentGroup.Get("/:id", equipmentHandler.GetByID)
	equipmentGroup.Put("/:id", equipmentHandler.Update)
	equipmentGroup.Delete("/:id", equipmentHandler.Delete)

	// Settings (reads for everyone, writes admin only)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireRole(entity.RoleAdmin), settingsHandler.Update)
}
