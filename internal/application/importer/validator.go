package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/activos-pro/internal/application/dto"
)

// headerRowOffset convierte el índice 0-based de un registro en el número de
// fila que ve el usuario en su hoja de cálculo: la cabecera es la fila 1,
// así que el primer registro de datos es la fila 2.
const headerRowOffset = 2

// Validate revisa todos los registros contra el esquema y devuelve la lista
// completa de errores. Nunca corta en el primero: el usuario corrige todo el
// archivo en una sola pasada en vez de descubrir los errores de a uno.
func Validate(schema Schema, records []Record) []dto.ImportValidationError {
	var errs []dto.ImportValidationError
	for i, rec := range records {
		row := i + headerRowOffset
		for _, col := range schema.Columns {
			value := strings.TrimSpace(rec[col.Name])
			if value == "" {
				if col.Required {
					errs = append(errs, dto.ImportValidationError{
						Row:     row,
						Column:  col.Name,
						Message: fmt.Sprintf("Missing required field: %s", col.Label),
					})
				}
				continue
			}
			if msg := validateFormat(col, value); msg != "" {
				errs = append(errs, dto.ImportValidationError{Row: row, Column: col.Name, Message: msg})
			}
		}
	}
	return errs
}

func validateFormat(col Column, value string) string {
	switch col.Type {
	case colDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Sprintf("Invalid date for %s: expected YYYY-MM-DD", col.Label)
		}
	case colEmail:
		if !strings.Contains(value, "@") {
			return fmt.Sprintf("Invalid email for %s", col.Label)
		}
	}
	return ""
}
