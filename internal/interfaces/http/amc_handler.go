package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
)

// AMCHandler maneja los contratos AMC del tenant (protegido).
type AMCHandler struct {
	uc *usecase.AMCService
}

// NewAMCHandler construye el handler.
func NewAMCHandler(uc *usecase.AMCService) *AMCHandler {
	return &AMCHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato AMC
// @Tags         amc
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAMCContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.AMCContractResponse
// @Router       /api/amc-contracts [post]
func (h *AMCHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAMCContractRequest
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
// @Summary      Obtener contrato por ID
// @Tags         amc
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.AMCContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/amc-contracts/{id} [get]
func (h *AMCHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), TenantFromCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos AMC con estado de vencimiento
// @Tags         amc
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AMCContractListResponse
// @Router       /api/amc-contracts [get]
func (h *AMCHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), TenantFromCtx(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato AMC
// @Tags         amc
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.CreateAMCContractRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AMCContractResponse
// @Router       /api/amc-contracts/{id} [put]
func (h *AMCHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateAMCContractRequest
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
// @Summary      Eliminar contrato AMC
// @Tags         amc
// @Security     Bearer
// @Param        id  path  string  true  "ID del contrato"
// @Success      204  "sin contenido"
// @Router       /api/amc-contracts/{id} [delete]
func (h *AMCHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), TenantFromCtx(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
