package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jvaldiviae/cyberlink-api/internal/application/auth"
	"github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
	"github.com/jvaldiviae/cyberlink-api/internal/infrastructure/pdf"
	"github.com/jvaldiviae/cyberlink-api/internal/infrastructure/postgres"
	"github.com/jvaldiviae/cyberlink-api/internal/infrastructure/storage"
	"github.com/jvaldiviae/cyberlink-api/internal/interfaces/http"
	"github.com/jvaldiviae/cyberlink-api/internal/migration"
	"github.com/jvaldiviae/cyberlink-api/pkg/config"
	"github.com/jvaldiviae/cyberlink-api/pkg/logger"
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

	if err := migration.Run(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	billingRepo := postgres.NewBillingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de comprobantes")
	}

	clientUC := usecase.NewClientUseCase(clientRepo, billingRepo)
	planUC := usecase.NewPlanUseCase(planRepo)
	contractUC := usecase.NewContractUseCase(contractRepo, clientRepo, planRepo)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, store, log)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, contractRepo, clientRepo)
	paymentUC := billing.NewPaymentUseCase(txRunner, paymentRepo, invoiceRepo, receiptRepo)
	statementUC := billing.NewStatementUseCase(clientRepo, billingRepo, invoiceRepo, paymentRepo)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, contractRepo, planRepo, pdf.NewMarotoPDFGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Admin inicial: solo si la tabla de usuarios está vacía.
	created, err := authUC.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario admin")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("usuario admin inicial creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // margen sobre el máximo de un comprobante
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Comprobantes subidos, servidos como estáticos.
	app.Static(cfg.Uploads.PublicURL, cfg.Uploads.Dir)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cyberlink API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	http.Router(app, http.RouterDeps{
		ClientUC:    clientUC,
		PlanUC:      planUC,
		ContractUC:  contractUC,
		ReceiptUC:   receiptUC,
		InvoiceUC:   invoiceUC,
		PaymentUC:   paymentUC,
		StatementUC: statementUC,
		PDFUC:       pdfUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
