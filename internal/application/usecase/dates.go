package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/activos-pro/internal/domain"
)

// dateLayout es el formato de fecha de la API pública ("2026-03-10").
const dateLayout = "2006-01-02"

// parseDate convierte la fecha de un request. Cadena vacía → nil (campo
// opcional); formato inválido → ErrInvalidInput envuelto con el campo.
func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	t = t.UTC()
	return &t, nil
}
