package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain"
)

// respondError traduce errores de dominio y de cuota a respuestas HTTP.
// Una cuota superada se reporta como 402 con el detalle tipado para que el
// frontend arme el mensaje de upgrade; todo lo no mapeado es un 500.
func respondError(c *fiber.Ctx, err error) error {
	var qe *usecase.QuotaExceededError
	if errors.As(err, &qe) {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"code":    "QUOTA_EXCEEDED",
			"message": "límite del plan alcanzado",
			"detail":  qe,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSlugInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SLUG_INVALID", Message: err.Error()})
	case errors.Is(err, domain.ErrSlugTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SLUG_TAKEN", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrOrgNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrFeatureDisabled):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FEATURE_DISABLED", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
