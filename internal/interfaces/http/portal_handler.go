package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

// PortalHandler maneja las rutas públicas del portal de autoatención:
// planes contratables, autoconsulta por DNI y solicitudes de servicio.
// No requiere autenticación.
type PortalHandler struct {
	planUC    *usecase.PlanUseCase
	clientUC  *usecase.ClientUseCase
	statement *billing.StatementUseCase
}

// NewPortalHandler construye el handler.
func NewPortalHandler(planUC *usecase.PlanUseCase, clientUC *usecase.ClientUseCase, statement *billing.StatementUseCase) *PortalHandler {
	return &PortalHandler{planUC: planUC, clientUC: clientUC, statement: statement}
}

// Plans godoc
// @Summary      Planes contratables (público)
// @Tags         portal
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/portal/planes [get]
func (h *PortalHandler) Plans(c *fiber.Ctx) error {
	out, err := h.planUC.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClientByDNI godoc
// @Summary      Autoconsulta del abonado por DNI (público)
// @Tags         portal
// @Produce      json
// @Param        dni  path  string  true  "DNI del abonado"
// @Success      200  {object}  dto.PortalClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/portal/clientes/{dni} [get]
func (h *PortalHandler) ClientByDNI(c *fiber.Ctx) error {
	out, err := h.statement.PortalByDNI(c.Context(), c.Params("dni"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRequest godoc
// @Summary      Solicitud de servicio (público): crea un cliente PROSPECTO
// @Tags         portal
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del solicitante"
// @Success      201   {object}  dto.ClientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/portal/solicitudes [post]
func (h *PortalHandler) CreateRequest(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DNI == "" || in.FirstName == "" || in.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dni, nombres y apellidos son requeridos"})
	}
	out, err := h.clientUC.CreateProspect(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
