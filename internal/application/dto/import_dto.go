package dto

// ImportRequest cuerpo de una importación masiva. Data lleva el CSV
// completo tal cual; CompanyID solo aplica al importar dispositivos.
type ImportRequest struct {
	CompanyID string `json:"company_id,omitempty"`
	Data      string `json:"data"`
}

// ImportValidationError un error de una fila del archivo importado.
// Row es 1-based contando la cabecera como fila 1, igual que lo ve el
// usuario al abrir el archivo en una hoja de cálculo.
type ImportValidationError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Message string `json:"message"`
}

// ImportRowError un fallo al persistir una fila ya validada.
type ImportRowError struct {
	Row     int    `json:"row,omitempty"`
	Message string `json:"message"`
}

// ImportResultResponse resultado de una importación masiva.
// Si ValidationErrors no está vacío, la importación no se ejecutó
// (validar todo primero, confirmar después).
type ImportResultResponse struct {
	RowsParsed       int                     `json:"rows_parsed"`
	Success          int                     `json:"success"`
	ValidationErrors []ImportValidationError `json:"validation_errors,omitempty"`
	Errors           []ImportRowError        `json:"errors,omitempty"`
}
