//go:build tools

// Fija las herramientas de generación en go.mod. swag genera docs/swagger.json
// a partir de las anotaciones de los handlers.
package tools

import (
	_ "github.com/swaggo/swag"
)
