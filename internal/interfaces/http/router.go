package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/auth"
	"github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	PlanUC      *usecase.PlanUseCase
	ContractUC  *usecase.ContractUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PaymentUC   *billing.PaymentUseCase
	StatementUC *billing.StatementUseCase
	PDFUC       *billing.PDFUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Portal de autoatención (público)
	portal := api.Group("/portal")
	portalHandler := NewPortalHandler(deps.PlanUC, deps.ClientUC, deps.StatementUC)
	portal.Get("/planes", portalHandler.Plans)
	portal.Get("/clientes/:dni", portalHandler.ClientByDNI)
	portal.Post("/solicitudes", portalHandler.CreateRequest)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC, deps.StatementUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Get("/:id/resumen", clientHandler.Summary)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id/estado", clientHandler.ChangeStatus)
	clients.Delete("/:id", clientHandler.Delete)

	// Planes
	plans := protected.Group("/planes")
	planHandler := NewPlanHandler(deps.PlanUC)
	plans.Post("/", planHandler.Create)
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.GetByID)
	plans.Put("/:id", planHandler.Update)
	plans.Delete("/:id", planHandler.Delete)

	// Contratos
	contracts := protected.Group("/contratos")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)
	contracts.Patch("/:id/estado", contractHandler.ChangeStatus)
	contracts.Delete("/:id", contractHandler.Delete)

	// Facturas
	invoices := protected.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/estado", invoiceHandler.ChangeStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Pagos
	payments := protected.Group("/pagos")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Comprobantes
	receipts := protected.Group("/comprobantes")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Upload)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Delete("/:id", receiptHandler.Delete)

	// Usuarios del panel (solo ADMIN)
	protected.Post("/usuarios", RequireAdmin(), authHandler.CreateUser)
}
