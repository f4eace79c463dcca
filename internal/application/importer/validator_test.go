package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la validación de filas importadas.
//
// El número de fila reportado es el que ve el usuario en su hoja de cálculo
// (cabecera = fila 1), y la validación recorre SIEMPRE el archivo completo.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_FilaReportadaCuentaLaCabecera(t *testing.T) {
	schema, ok := SchemaFor(KindCompanies)
	require.True(t, ok)

	records := []Record{
		{"name": "Acme", "contact_name": "Ana"},
		{"name": "", "contact_name": "Luis"}, // primer registro inválido
	}

	errs := Validate(schema, records)

	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Row, "el segundo registro de datos es la fila 3 del archivo")
	assert.Equal(t, "name", errs[0].Column)
	assert.Equal(t, "Missing required field: Company Name", errs[0].Message)
}

func TestValidate_AcumulaTodosLosErrores(t *testing.T) {
	schema, _ := SchemaFor(KindDevices)

	records := []Record{
		{"device_type": "", "serial_number": ""},
		{"device_type": "laptop", "serial_number": "SN1", "warranty_end_date": "10-03-2026"},
		{"device_type": "printer", "serial_number": "SN2"},
	}

	errs := Validate(schema, records)

	require.Len(t, errs, 3, "dos requeridos faltantes en la fila 2 y una fecha inválida en la 3")
	assert.Equal(t, 2, errs[0].Row)
	assert.Equal(t, 2, errs[1].Row)
	assert.Equal(t, 3, errs[2].Row)
	assert.Contains(t, errs[2].Message, "YYYY-MM-DD")
}

func TestValidate_CamposOpcionalesVaciosNoFallan(t *testing.T) {
	schema, _ := SchemaFor(KindDevices)

	records := []Record{
		{"device_type": "laptop", "serial_number": "SN1"},
	}

	assert.Empty(t, Validate(schema, records))
}

func TestValidate_EmailInvalido(t *testing.T) {
	schema, _ := SchemaFor(KindUsers)

	records := []Record{
		{"name": "Ana", "email": "no-es-un-email"},
	}

	errs := Validate(schema, records)

	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Column)
}

func TestValidate_SinRegistrosSinErrores(t *testing.T) {
	schema, _ := SchemaFor(KindUsers)

	assert.Empty(t, Validate(schema, nil))
}
