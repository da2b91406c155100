package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

// ContractHandler maneja las peticiones HTTP para contratos (protegido).
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" || in.PlanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id y plan_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar contratos con datos del cliente y plan
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        cliente_id  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.ContractResponse
// @Router       /api/contratos [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("cliente_id"); clientID != "" {
		out, err := h.uc.ListByClient(clientID)
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
// @Summary      Obtener contrato por ID
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato (el estado cambia solo por /estado)
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "Datos del contrato"
// @Success      200   {object}  dto.ContractResponse
// @Router       /api/contratos/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
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
// @Summary      Cambiar estado del contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del contrato"
// @Param        body  body  dto.ContractStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ContractResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/estado [patch]
func (h *ContractHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ContractStatusRequest
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
// @Summary      Eliminar contrato (sin facturas que lo referencien)
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del contrato"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contrato eliminado"})
}
