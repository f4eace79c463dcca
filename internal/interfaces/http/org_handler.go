package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/activos-pro/internal/application/dto"
	"github.com/tu-usuario/activos-pro/internal/application/reports"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
)

// OrgHandler maneja la vista de organización: perfil, dashboard, alertas,
// catálogo de planes, ajustes y reportes (protegido).
type OrgHandler struct {
	orgUC    *usecase.OrgService
	alertsUC *usecase.AlertAggregator
	reportUC *reports.Service
}

// NewOrgHandler construye el handler.
func NewOrgHandler(orgUC *usecase.OrgService, alertsUC *usecase.AlertAggregator, reportUC *reports.Service) *OrgHandler {
	return &OrgHandler{orgUC: orgUC, alertsUC: alertsUC, reportUC: reportUC}
}

// Me godoc
// @Summary      Organización actual con plan efectivo y consumo
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrgMeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/org/me [get]
func (h *OrgHandler) Me(c *fiber.Ctx) error {
	out, err := h.orgUC.Me(c.Context(), TenantFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Conteos del dashboard del tenant
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrgDashboardResponse
// @Router       /api/org/dashboard [get]
func (h *OrgHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.orgUC.Dashboard(c.Context(), TenantFromCtx(c), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Buckets de alertas de vencimiento
// @Tags         org
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertBucketSetResponse
// @Router       /api/org/dashboard/alerts [get]
func (h *OrgHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.alertsUC.BuildAlerts(c.Context(), TenantFromCtx(c), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPlans godoc
// @Summary      Catálogo de planes activos
// @Tags         plans
// @Produce      json
// @Success      200  {object}  dto.PlanListResponse
// @Router       /api/plans [get]
func (h *OrgHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.orgUC.ListPlans(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateTicketingSettings godoc
// @Summary      Guardar ajustes de integración de ticketing
// @Tags         org
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TicketingSettingsRequest  true  "Credenciales de la integración"
// @Success      204   "sin contenido"
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/org/settings/ticketing [put]
func (h *OrgHandler) UpdateTicketingSettings(c *fiber.Ctx) error {
	var in dto.TicketingSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.orgUC.UpdateTicketingSettings(c.Context(), TenantFromCtx(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExpiryReport godoc
// @Summary      Reporte de vencimientos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/org/reports/expiry [get]
func (h *OrgHandler) ExpiryReport(c *fiber.Ctx) error {
	pdf, err := h.reportUC.GenerateExpiryReport(c.Context(), TenantFromCtx(c), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-vencimientos.pdf"`)
	return c.Send(pdf)
}
