package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
)

// DeviceHandler maneja los dispositivos del tenant (protegido).
type DeviceHandler struct {
	uc *usecase.DeviceService
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(uc *usecase.DeviceService) *DeviceHandler {
	return &DeviceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear dispositivo
// @Tags         devices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeviceRequest  true  "Datos del dispositivo"
// @Success      201   {object}  dto.DeviceResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/devices [post]
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), TenantFromCtx(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener dispositivo por ID
// @Tags         devices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del dispositivo"
// @Success      200  {object}  dto.DeviceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/devices/{id} [get]
func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), TenantFromCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar dispositivos con estado de garantía
// @Tags         devices
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DeviceListResponse
// @Router       /api/devices [get]
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantFromCtx(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar dispositivo
// @Tags         devices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dispositivo"
// @Param        body  body  dto.CreateDeviceRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DeviceResponse
// @Router       /api/devices/{id} [put]
func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), TenantFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dispositivo
// @Tags         devices
// @Security     Bearer
// @Param        id  path  string  true  "ID del dispositivo"
// @Success      204  "sin contenido"
// @Router       /api/devices/{id} [delete]
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), TenantFromCtx(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
