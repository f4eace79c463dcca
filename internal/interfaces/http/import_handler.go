package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/importer"
)

// ImportHandler maneja las importaciones masivas por CSV (protegido).
type ImportHandler struct {
	uc *importer.Service
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.Service) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportDevices godoc
// @Summary      Importar dispositivos desde CSV
// @Description  Valida todas las filas antes de insertar; si alguna falla la
// @Description  validación, no se inserta nada. La cuota se verifica con el
// @Description  total del lote.
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "CSV y empresa destino"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/imports/devices [post]
func (h *ImportHandler) ImportDevices(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ImportDevices(c.Context(), TenantFromCtx(c), in.CompanyID, in.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ImportCompanies godoc
// @Summary      Importar empresas cliente desde CSV
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "CSV de empresas"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/imports/companies [post]
func (h *ImportHandler) ImportCompanies(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ImportCompanies(c.Context(), TenantFromCtx(c), in.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ImportUsers godoc
// @Summary      Importar usuarios desde CSV
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "CSV de usuarios"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/imports/users [post]
func (h *ImportHandler) ImportUsers(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ImportUsers(c.Context(), TenantFromCtx(c), in.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
