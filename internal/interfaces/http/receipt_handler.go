package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/application/usecase"
)

// Tamaño máximo aceptado para un comprobante (imagen o PDF).
const maxReceiptSize = 10 << 20 // 10 MiB

// ReceiptHandler maneja la subida y consulta de comprobantes de pago (protegido).
type ReceiptHandler struct {
	uc *usecase.ReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir comprobante de pago (multipart)
// @Tags         comprobantes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo  formData  file    true  "Imagen o PDF del comprobante"
// @Param        tipo     formData  string  true  "YAPE | DEPOSITO | TRANSFERENCIA"
// @Success      201  {object}  dto.ReceiptResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/comprobantes [post]
func (h *ReceiptHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo es requerido"})
	}
	if fileHeader.Size > maxReceiptSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo"})
	}
	tipo := c.FormValue("tipo")

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	out, err := h.uc.Upload(fileHeader.Filename, tipo, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar comprobantes
// @Tags         comprobantes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReceiptResponse
// @Router       /api/comprobantes [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comprobante por ID
// @Tags         comprobantes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del comprobante"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comprobantes/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar comprobante (sin pagos que lo referencien)
// @Tags         comprobantes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del comprobante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/comprobantes/{id} [delete]
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "comprobante eliminado"})
}
