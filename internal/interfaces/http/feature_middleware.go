package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// featureChecker es el contrato mínimo que necesita el middleware para
// verificar flags de plan. Lo implementa *usecase.QuotaService; el uso de
// interfaz evita el import circular.
type featureChecker interface {
	HasFeature(ctx context.Context, orgID string, feature entity.Feature) (bool, error)
}

// RequireFeature devuelve un middleware Fiber que verifica si el plan
// efectivo del tenant tiene el feature activo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalOrgID).
//
// Comportamiento:
//   - 403 Forbidden → feature no incluido en el plan (o suscripción expirada).
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay org_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireFeature(feature entity.Feature, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := GetOrgID(c)
		if orgID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "org_id no encontrado en el token",
			})
		}

		active, err := checker.HasFeature(c.Context(), orgID, feature)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_CHECK_FAILED",
				Message: "no se pudo verificar el plan, intente más tarde",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "el feature '" + string(feature) + "' no está incluido en su plan",
			})
		}

		return c.Next()
	}
}
