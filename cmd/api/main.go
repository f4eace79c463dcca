package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/activos-pro/internal/application/auth"
	"github.com/tu-usuario/activos-pro/internal/application/importer"
	"github.com/tu-usuario/activos-pro/internal/application/reports"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/activos-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/activos-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/activos-pro/internal/interfaces/http"
	"github.com/tu-usuario/activos-pro/pkg/config"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	usageRepo := postgres.NewUsageRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	amcRepo := postgres.NewAMCRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	quotaSvc := usecase.NewQuotaService(orgRepo, planRepo, usageRepo)

	authUC := auth.NewService(orgRepo, userRepo, planRepo, txRunner, cfg.JWT, cfg.SaaS, log)
	orgUC := usecase.NewOrgService(orgRepo, planRepo, usageRepo, deviceRepo, amcRepo, licenseRepo, quotaSvc, log)
	alertsUC := usecase.NewAlertAggregator(deviceRepo, amcRepo, licenseRepo)
	companyUC := usecase.NewCompanyService(companyRepo, quotaSvc, log)
	siteUC := usecase.NewSiteService(siteRepo, companyRepo)
	userUC := usecase.NewUserService(userRepo, quotaSvc, log)
	deviceUC := usecase.NewDeviceService(deviceRepo, companyRepo, quotaSvc, log)
	amcUC := usecase.NewAMCService(amcRepo, companyRepo)
	licenseUC := usecase.NewLicenseService(licenseRepo, companyRepo)
	importUC := importer.NewService(quotaSvc, deviceRepo, companyRepo, userRepo, log)

	// PDF: reporte de vencimientos de garantías, contratos y licencias
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewService(orgRepo, deviceRepo, amcRepo, licenseRepo, quotaSvc, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El JSON no va versionado; generarlo con:
	//   swag init -g cmd/api/main.go -o docs --ot json
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Activos Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		OrgUC:     orgUC,
		AlertsUC:  alertsUC,
		ReportUC:  reportUC,
		CompanyUC: companyUC,
		SiteUC:    siteUC,
		UserUC:    userUC,
		DeviceUC:  deviceUC,
		AMCUC:     amcUC,
		LicenseUC: licenseUC,
		ImportUC:  importUC,
		Quota:     quotaSvc,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
