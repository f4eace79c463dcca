package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/auth"
	"github.com/tu-usuario/activos-pro/internal/application/importer"
	"github.com/tu-usuario/activos-pro/internal/application/reports"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.Service
	OrgUC     *usecase.OrgService
	AlertsUC  *usecase.AlertAggregator
	ReportUC  *reports.Service
	CompanyUC *usecase.CompanyService
	SiteUC    *usecase.SiteService
	UserUC    *usecase.UserService
	DeviceUC  *usecase.DeviceService
	AMCUC     *usecase.AMCService
	LicenseUC *usecase.LicenseService
	ImportUC  *importer.Service
	Quota     *usecase.QuotaService
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/check-subdomain/:slug", authHandler.CheckSlug)

	orgHandler := NewOrgHandler(deps.OrgUC, deps.AlertsUC, deps.ReportUC)

	// Catálogo de planes (público, para la página de precios)
	api.Get("/plans", orgHandler.ListPlans)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Organización (protegido)
	org := protected.Group("/org")
	org.Get("/me", orgHandler.Me)
	org.Get("/dashboard", orgHandler.Dashboard)
	org.Get("/dashboard/alerts", orgHandler.Alerts)
	org.Put("/settings/ticketing", orgHandler.UpdateTicketingSettings)
	org.Get("/reports/expiry",
		RequireFeature(entity.FeatureExportReports, deps.Quota),
		orgHandler.ExpiryReport)

	// Companies y sites (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.SiteUC)
	companies := protected.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	sites := protected.Group("/sites")
	sites.Post("/", companyHandler.CreateSite)
	sites.Get("/", companyHandler.ListSites)
	sites.Put("/:id", companyHandler.UpdateSite)
	sites.Delete("/:id", companyHandler.DeleteSite)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Devices (protegido)
	devices := protected.Group("/devices")
	deviceHandler := NewDeviceHandler(deps.DeviceUC)
	devices.Post("/", deviceHandler.Create)
	devices.Get("/", deviceHandler.List)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Put("/:id", deviceHandler.Update)
	devices.Delete("/:id", deviceHandler.Delete)

	// Contratos AMC (protegido)
	amc := protected.Group("/amc-contracts")
	amcHandler := NewAMCHandler(deps.AMCUC)
	amc.Post("/", amcHandler.Create)
	amc.Get("/", amcHandler.List)
	amc.Get("/:id", amcHandler.GetByID)
	amc.Put("/:id", amcHandler.Update)
	amc.Delete("/:id", amcHandler.Delete)

	// Licencias (protegido). La ruta fija va antes que el parámetro
	// para que "expiring" no se resuelva como :id.
	licenses := protected.Group("/licenses")
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	licenses.Post("/", licenseHandler.Create)
	licenses.Get("/", licenseHandler.List)
	licenses.Get("/expiring/summary", licenseHandler.ExpirySummary)
	licenses.Get("/:id", licenseHandler.GetByID)
	licenses.Put("/:id", licenseHandler.Update)
	licenses.Delete("/:id", licenseHandler.Delete)

	// Importaciones masivas (protegido)
	imports := protected.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC)
	imports.Post("/devices", importHandler.ImportDevices)
	imports.Post("/companies", importHandler.ImportCompanies)
	imports.Post("/users", importHandler.ImportUsers)
}
