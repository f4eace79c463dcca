package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/auth"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
)

// AuthHandler maneja signup, login y verificación de subdominios (público).
type AuthHandler struct {
	uc *auth.Service
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.Service) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar organización
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Datos de la organización y su propietario"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckSlug godoc
// @Summary      Verificar disponibilidad de subdominio
// @Tags         auth
// @Produce      json
// @Param        slug  path  string  true  "Subdominio candidato"
// @Success      200   {object}  dto.SlugCheckResponse
// @Router       /api/auth/check-subdomain/{slug} [get]
func (h *AuthHandler) CheckSlug(c *fiber.Ctx) error {
	candidate := c.Params("slug")
	if candidate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "slug es requerido"})
	}
	out, err := h.uc.CheckSlug(c.Context(), candidate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
