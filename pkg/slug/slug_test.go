package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_DescartaDiacriticos(t *testing.T) {
	assert.Equal(t, "compania-nandu", Generate("Compañía Ñandú"))
	assert.Equal(t, "acme-solutions", Generate("  Acme   Solutions  "))
	assert.Equal(t, "tech-co", Generate("Tech & Co!"))
}

func TestValidate_Reglas(t *testing.T) {
	ok, _ := Validate("acme-sistemas")
	assert.True(t, ok)

	ok, reason := Validate("ab")
	assert.False(t, ok)
	assert.Contains(t, reason, "3 caracteres")

	ok, _ = Validate("-acme")
	assert.False(t, ok, "guion inicial no permitido")

	ok, _ = Validate("Acme")
	assert.False(t, ok, "mayúsculas no permitidas")

	ok, reason = Validate("admin")
	assert.False(t, ok)
	assert.Equal(t, "subdominio reservado", reason)
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("api"))
	assert.False(t, IsReserved("acme"))
}
