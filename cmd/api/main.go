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

	appanalytics "github.com/jhoicas/despachosys-api/internal/application/analytics"
	"github.com/jhoicas/despachosys-api/internal/application/auth"
	"github.com/jhoicas/despachosys-api/internal/application/inventory"
	"github.com/jhoicas/despachosys-api/internal/application/reports"
	"github.com/jhoicas/despachosys-api/internal/application/sales"
	"github.com/jhoicas/despachosys-api/internal/application/usecase"
	"github.com/jhoicas/despachosys-api/internal/infrastructure/cache"
	"github.com/jhoicas/despachosys-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/despachosys-api/internal/infrastructure/pdf"
	"github.com/jhoicas/despachosys-api/internal/infrastructure/postgres"
	"github.com/jhoicas/despachosys-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/despachosys-api/internal/interfaces/http"
	"github.com/jhoicas/despachosys-api/pkg/config"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		migrator, err := postgres.NewMigrator(cfg.DB, log.Named("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		if err := migrator.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		_ = migrator.Close()
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché del tablero: opcional; sin Redis se consulta siempre la base.
	var statsCache appanalytics.StatsCache
	if cfg.Redis.Enabled() {
		client, err := cache.NewClient(cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, tablero sin caché")
		} else {
			defer client.Close()
			statsCache = cache.NewStatsCache(client, cfg.Redis.StatsTTL)
		}
	}

	recorder := metrics.New()

	txRunner := postgres.NewTxRunner(pool)
	dispatchRepo := postgres.NewDispatchRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, log, recorder)
	dispatchUC := inventory.NewDispatchUseCase(txRunner, dispatchRepo, log, recorder)
	orderUC := sales.NewOrderUseCase(
		txRunner, postgres.NewSalesOrderRepository(pool),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name), log, recorder,
	)
	exportUC := reports.NewExportUseCase(dispatchRepo, movementRepo, xlsx.NewWriter())
	dashboardUC := appanalytics.NewDashboardUseCase(postgres.NewStatsRepository(pool), statsCache, log)

	// Emisión de tokens por HTTP solo en development; en el resto se usa cmd/token.
	var authUC *auth.AuthUseCase
	if cfg.App.Env == "development" && cfg.JWT.Secret != "" {
		authUC = auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	if cfg.Metrics.Enabled {
		app.Use(recorder.Middleware())
		app.Get(cfg.Metrics.Path, recorder.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DespachoSys Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:    usecase.NewCategoryUseCase(postgres.NewCategoryRepository(pool)),
		ProductUC:     usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		CarrierUC:     usecase.NewCarrierUseCase(postgres.NewCarrierRepository(pool)),
		CustomerUC:    usecase.NewCustomerUseCase(postgres.NewCustomerRepository(pool)),
		OpportunityUC: usecase.NewOpportunityUseCase(postgres.NewOpportunityRepository(pool)),
		AccountUC:     usecase.NewAccountUseCase(postgres.NewAccountRepository(pool)),
		PayableUC:     usecase.NewPayableUseCase(postgres.NewPayableRepository(pool)),
		ReceivableUC:  usecase.NewReceivableUseCase(postgres.NewReceivableRepository(pool)),
		UserUC:        usecase.NewUserUseCase(userRepo),
		MovementUC:    movementUC,
		DispatchUC:    dispatchUC,
		OrderUC:       orderUC,
		ExportUC:      exportUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
