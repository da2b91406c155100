package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP para facturas (protegido).
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Emitir factura
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facturas [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ContractID == "" || in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contrato_id y cliente_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas (emisión descendente)
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        cliente_id   query  string  false  "Filtrar por cliente"
// @Param        contrato_id  query  string  false  "Filtrar por contrato"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("cliente_id"); clientID != "" {
		out, err := h.uc.ListByClient(clientID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if contractID := c.Query("contrato_id"); contractID != "" {
		out, err := h.uc.ListByContract(contractID)
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
// @Summary      Obtener factura por ID
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         facturas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.Render(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}

// Update godoc
// @Summary      Actualizar factura (el estado cambia solo por /estado)
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Router       /api/facturas/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la factura
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.InvoiceStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/estado [patch]
func (h *InvoiceHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.InvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura (sin pagos registrados)
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "factura eliminada"})
}
