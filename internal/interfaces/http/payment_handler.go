package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
)

// PaymentHandler maneja las peticiones HTTP para pagos (protegido).
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago (salda la factura si completa el monto)
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.InvoiceID == "" || in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factura_id y cliente_id son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pagos con datos del cliente y comprobante
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        cliente_id  query  string  false  "Filtrar por cliente"
// @Param        factura_id  query  string  false  "Filtrar por factura"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/pagos [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("cliente_id"); clientID != "" {
		out, err := h.uc.ListByClient(clientID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if invoiceID := c.Query("factura_id"); invoiceID != "" {
		out, err := h.uc.ListByInvoice(invoiceID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir un pago (no recalcula el estado de la factura)
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "Datos del pago"
// @Success      200   {object}  dto.PaymentResponse
// @Router       /api/pagos/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pago (la factura conserva su estado)
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pago"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/pagos/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pago eliminado"})
}
