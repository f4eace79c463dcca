// Package importer implementa la importación masiva por CSV: parseo del
// dialecto propio, validación fila a fila y alta en lote con verificación
// de cuota previa (validar todo primero, confirmar después).
package importer

import "strings"

// Record es una fila de datos ya mapeada por cabecera.
type Record map[string]string

// ParseCSV parsea el contenido con el dialecto propio de la plataforma:
// comillas dobles alternan el modo "entre comillas" y las comas solo separan
// campos fuera de él. Limitación conocida del dialecto: NO soporta comillas
// escapadas por duplicación (RFC 4180); un `""` dentro de un campo alterna
// dos veces. Las plantillas de importación que publicamos nunca generan ese
// caso.
//
// Entrada vacía o solo cabecera → cero registros, sin error. Las filas más
// cortas que la cabecera se completan con "" (columnas opcionales ausentes
// al final de la línea).
func ParseCSV(data string) (headers []string, records []Record) {
	lines := splitLines(data)
	if len(lines) == 0 {
		return nil, []Record{}
	}

	headers = splitFields(lines[0])
	for i := range headers {
		headers[i] = strings.Trim(strings.TrimSpace(headers[i]), `"`)
	}

	records = make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				rec[h] = strings.TrimSpace(fields[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return headers, records
}

// splitLines separa por \n, tolera \r\n y descarta líneas en blanco
// (incluida la última si el archivo termina o no con salto de línea).
func splitLines(data string) []string {
	raw := strings.Split(data, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// splitFields separa una línea en campos con el toggle de comillas.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
