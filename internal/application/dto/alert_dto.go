package dto

// AlertItem un recurso dentro de un bucket de alerta.
// Label puede ser "" si el registro no tiene contexto para etiquetarse:
// la alerta se reporta igual, nunca se descarta por eso.
type AlertItem struct {
	ResourceID    string `json:"resource_id"`
	ResourceLabel string `json:"resource_label"`
	DaysRemaining int    `json:"days_remaining"`
}

// AlertBucketSetResponse es la respuesta de GET /api/org/dashboard/alerts.
//
// Las claves de bucket son contrato estable con la UI: aparecen SIEMPRE,
// aunque vengan vacías, porque el frontend itera todas sin comprobar
// existencia. El orden dentro de cada bucket es el orden de entrada.
type AlertBucketSetResponse struct {
	Buckets     map[string][]AlertItem `json:"buckets"`
	TotalAlerts int                    `json:"total_alerts"`
}
