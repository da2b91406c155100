package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para clientes (protegido).
type ClientHandler struct {
	uc        *usecase.ClientUseCase
	statement *billing.StatementUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, statement *billing.StatementUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, statement: statement}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DNI == "" || in.FirstName == "" || in.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dni, nombres y apellidos son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes con su deuda y estado de facturación
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	// ?dni= permite búsqueda exacta desde el buscador del panel.
	if dni := c.Query("dni"); dni != "" {
		out, err := h.uc.GetByDNI(c.Context(), dni)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON([]interface{}{out})
	}
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de facturación del cliente
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientSummaryResponse
// @Router       /api/clientes/{id}/resumen [get]
func (h *ClientHandler) Summary(c *fiber.Ctx) error {
	out, err := h.statement.Summary(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.ClientResponse
// @Router       /api/clientes/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado del cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.ClientStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ClientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/estado [patch]
func (h *ClientHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ClientStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente (sin contratos, facturas ni pagos)
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}
