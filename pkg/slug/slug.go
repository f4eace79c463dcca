// Package slug genera y valida los slugs (subdominios) de las organizaciones.
// El slug es la clave pública del tenant: minúsculas, dígitos y guiones,
// único a nivel global e inmutable después del signup.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Subdominios que nunca pueden asignarse a un tenant.
var reserved = map[string]bool{
	"admin":   true,
	"api":     true,
	"app":     true,
	"www":     true,
	"support": true,
	"help":    true,
	"blog":    true,
	"status":  true,
}

const minLength = 3

var (
	validPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	invalidChars   = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaceCollapse  = regexp.MustCompile(`[\s_]+`)
	hyphenCollapse = regexp.MustCompile(`-+`)
)

// Generate deriva un slug URL-amigable a partir del nombre de la organización.
// Normaliza Unicode (NFD) y descarta diacríticos para que "Compañía Ñandú"
// produzca "compania-nandu" y no pierda letras completas.
func Generate(name string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), name)
	if err != nil {
		folded = name
	}

	s := strings.ToLower(strings.TrimSpace(folded))
	s = invalidChars.ReplaceAllString(s, "")
	s = spaceCollapse.ReplaceAllString(s, "-")
	s = hyphenCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Validate informa si el slug es utilizable y, si no, la razón.
func Validate(s string) (ok bool, reason string) {
	if len(s) < minLength {
		return false, "el subdominio debe tener al menos 3 caracteres"
	}
	if !validPattern.MatchString(s) {
		return false, "solo minúsculas, dígitos y guiones; sin guiones al inicio o final"
	}
	if reserved[s] {
		return false, "subdominio reservado"
	}
	return true, ""
}

// IsReserved informa si el slug está en la lista de reservados.
func IsReserved(s string) bool { return reserved[s] }
