package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
)

// LicenseHandler maneja las licencias de software del tenant (protegido).
type LicenseHandler struct {
	uc *usecase.LicenseService
}

// NewLicenseHandler construye el handler.
func NewLicenseHandler(uc *usecase.LicenseService) *LicenseHandler {
	return &LicenseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear licencia
// @Tags         licenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLicenseRequest  true  "Datos de la licencia"
// @Success      201   {object}  dto.LicenseResponse
// @Router       /api/licenses [post]
func (h *LicenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLicenseRequest
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
// @Summary      Obtener licencia por ID
// @Tags         licenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la licencia"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [get]
func (h *LicenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), TenantFromCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar licencias con estado de vencimiento
// @Tags         licenses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.LicenseListResponse
// @Router       /api/licenses [get]
func (h *LicenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantFromCtx(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExpirySummary godoc
// @Summary      Resumen 7/15/30 de licencias por vencer
// @Tags         licenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LicenseExpirySummaryResponse
// @Router       /api/licenses/expiring/summary [get]
func (h *LicenseHandler) ExpirySummary(c *fiber.Ctx) error {
	out, err := h.uc.ExpirySummary(c.Context(), TenantFromCtx(c), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar licencia
// @Tags         licenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la licencia"
// @Param        body  body  dto.CreateLicenseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LicenseResponse
// @Router       /api/licenses/{id} [put]
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateLicenseRequest
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
// @Summary      Eliminar licencia
// @Tags         licenses
// @Security     Bearer
// @Param        id  path  string  true  "ID de la licencia"
// @Success      204  "sin contenido"
// @Router       /api/licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), TenantFromCtx(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
