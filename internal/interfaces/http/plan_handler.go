package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

// PlanHandler maneja las peticiones HTTP para planes (protegido).
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plan
// @Tags         planes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.PlanResponse
// @Router       /api/planes [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar planes
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Param        activo  query  bool  false  "Filtrar por planes activos o inactivos"
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/planes [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("activo"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "activo debe ser true o false"})
		}
		out, err := h.uc.ListByActive(active)
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
// @Summary      Obtener plan por ID
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planes/{id} [get]
func (h *PlanHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plan
// @Tags         planes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del plan"
// @Param        body  body  dto.UpdatePlanRequest  true  "Datos del plan"
// @Success      200   {object}  dto.PlanResponse
// @Router       /api/planes/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlanRequest
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
// @Summary      Eliminar plan (sin contratos que lo referencien)
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/planes/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "plan eliminado"})
}
