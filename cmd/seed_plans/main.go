// seed_plans inserta (o actualiza) los planes de referencia en la tabla
// plans. Es idempotente: se puede ejecutar en cada despliegue.
//
// Uso: go run ./cmd/seed_plans
// Lee la conexión de las mismas variables de entorno que la API (DATABASE_URL
// o DB_HOST/DB_PORT/...).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/activos-pro/pkg/config"
)

const upsertPlan = `
INSERT INTO plans (
	id, name, display_name, description, price_monthly, price_yearly,
	max_devices, max_users, max_companies, feature_flags, is_active, is_popular, sort_order
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	display_name = EXCLUDED.display_name,
	description = EXCLUDED.description,
	price_monthly = EXCLUDED.price_monthly,
	price_yearly = EXCLUDED.price_yearly,
	max_devices = EXCLUDED.max_devices,
	max_users = EXCLUDED.max_users,
	max_companies = EXCLUDED.max_companies,
	feature_flags = EXCLUDED.feature_flags,
	is_active = EXCLUDED.is_active,
	is_popular = EXCLUDED.is_popular,
	sort_order = EXCLUDED.sort_order`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, p := range entity.DefaultPlans() {
		flags, err := json.Marshal(p.Features.Flags)
		if err != nil {
			fmt.Fprintf(os.Stderr, "serializar flags de %s: %v\n", p.ID, err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, upsertPlan,
			p.ID, p.Name, p.DisplayName, p.Description, p.PriceMonthly, p.PriceYearly,
			p.Features.MaxDevices, p.Features.MaxUsers, p.Features.MaxCompanies,
			flags, p.IsActive, p.IsPopular, p.SortOrder,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar plan %s: %v\n", p.ID, err)
			os.Exit(1)
		}
		fmt.Printf("plan %-16s OK\n", p.ID)
	}
}
