package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/activos-pro/internal/application/importer"
	"github.com/tu-usuario/activos-pro/internal/application/usecase"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
	"github.com/tu-usuario/activos-pro/internal/domain/tenant"
	"github.com/tu-usuario/activos-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del flujo de importación completo con repos en memoria.
//
// Lo que se fija aquí: con errores de validación NO se inserta nada, la
// cuota se verifica con el total del lote en un solo chequeo, y los fallos
// de persistencia por fila no abortan el resto del archivo.
// ──────────────────────────────────────────────────────────────────────────────

const testOrgID = "org_test"

type memStore struct {
	org        *entity.Organization
	plans      map[string]*entity.Plan
	companies  map[string]*entity.Company
	devices    []*entity.Device
	users      []*entity.User
	failSerial string // Create de dispositivo falla para esta serie
}

func newMemStore() *memStore {
	plans := map[string]*entity.Plan{}
	for _, p := range entity.DefaultPlans() {
		plan := p
		plans[p.ID] = &plan
	}
	return &memStore{
		org: &entity.Organization{
			ID:                 testOrgID,
			Name:               "Org de Prueba",
			Slug:               "org-de-prueba",
			PlanID:             "plan_free",
			SubscriptionStatus: entity.SubscriptionActive,
			IsActive:           true,
		},
		plans: plans,
		companies: map[string]*entity.Company{
			"comp_1": {ID: "comp_1", OrgID: testOrgID, Name: "Acme"},
		},
	}
}

// ── Fakes de repositorio sobre memStore ──────────────────────────────────────

type memOrgRepo struct{ s *memStore }

func (r *memOrgRepo) Create(ctx context.Context, org *entity.Organization) error { return nil }
func (r *memOrgRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	if r.s.org != nil && r.s.org.ID == id {
		return r.s.org, nil
	}
	return nil, nil
}
func (r *memOrgRepo) GetBySlug(ctx context.Context, slug string) (*entity.Organization, error) {
	return nil, nil
}
func (r *memOrgRepo) SlugExists(ctx context.Context, slug string) (bool, error) { return false, nil }
func (r *memOrgRepo) Update(ctx context.Context, org *entity.Organization) error { return nil }

type memPlanRepo struct{ s *memStore }

func (r *memPlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	return r.s.plans[id], nil
}
func (r *memPlanRepo) GetByName(ctx context.Context, name string) (*entity.Plan, error) {
	for _, p := range r.s.plans {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memPlanRepo) ListActive(ctx context.Context) ([]*entity.Plan, error) { return nil, nil }

type memUsageRepo struct{ s *memStore }

func (r *memUsageRepo) GetUsageCounters(ctx context.Context, orgID string) (entity.UsageCounters, error) {
	return entity.UsageCounters{
		DeviceCount:  len(r.s.devices),
		UserCount:    len(r.s.users),
		CompanyCount: len(r.s.companies),
	}, nil
}

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	r.s.companies[c.ID] = c
	return nil
}
func (r *memCompanyRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}
func (r *memCompanyRepo) Update(ctx context.Context, c *entity.Company) error { return nil }
func (r *memCompanyRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (r *memCompanyRepo) Delete(ctx context.Context, orgID, id string) error { return nil }

type memDeviceRepo struct{ s *memStore }

func (r *memDeviceRepo) Create(ctx context.Context, d *entity.Device) error {
	if r.s.failSerial != "" && d.SerialNumber == r.s.failSerial {
		return errors.New("clave duplicada")
	}
	r.s.devices = append(r.s.devices, d)
	return nil
}
func (r *memDeviceRepo) GetByID(ctx context.Context, orgID, id string) (*entity.Device, error) {
	return nil, nil
}
func (r *memDeviceRepo) GetBySerial(ctx context.Context, orgID, serial string) (*entity.Device, error) {
	return nil, nil
}
func (r *memDeviceRepo) Update(ctx context.Context, d *entity.Device) error { return nil }
func (r *memDeviceRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.Device, error) {
	return nil, nil
}
func (r *memDeviceRepo) ListAll(ctx context.Context, orgID string) ([]*entity.Device, error) {
	return r.s.devices, nil
}
func (r *memDeviceRepo) Delete(ctx context.Context, orgID, id string) error { return nil }

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.users = append(r.s.users, u)
	return nil
}
func (r *memUserRepo) GetByID(ctx context.Context, orgID, id string) (*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (r *memUserRepo) List(ctx context.Context, orgID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) Delete(ctx context.Context, orgID, id string) error { return nil }

func newImportService(s *memStore) *importer.Service {
	quota := usecase.NewQuotaService(&memOrgRepo{s}, &memPlanRepo{s}, &memUsageRepo{s})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return importer.NewService(quota, &memDeviceRepo{s}, &memCompanyRepo{s}, &memUserRepo{s}, log)
}

func testTenant() tenant.Context {
	return tenant.Context{OrgID: testOrgID, UserID: "user_1", Role: entity.RoleOwner}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestImportDevices_ConErroresDeValidacionNoInsertaNada(t *testing.T) {
	store := newMemStore()
	svc := newImportService(store)

	// La fila 3 no tiene serial: el archivo completo se rechaza.
	csv := "device_type,serial_number\nlaptop,SN1\nprinter,\n"
	result, err := svc.ImportDevices(context.Background(), testTenant(), "comp_1", csv)

	require.NoError(t, err)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, 3, result.ValidationErrors[0].Row)
	assert.Equal(t, 0, result.Success)
	assert.Empty(t, store.devices, "validar todo primero: ninguna fila se persiste")
}

func TestImportDevices_CuotaSeVerificaConElTotalDelLote(t *testing.T) {
	store := newMemStore()
	// Plan free: max 10 dispositivos. Con 9 en uso, un lote de 2 no cabe.
	for i := 0; i < 9; i++ {
		store.devices = append(store.devices, &entity.Device{OrgID: testOrgID})
	}
	svc := newImportService(store)

	csv := "device_type,serial_number\nlaptop,SN1\nlaptop,SN2\n"
	_, err := svc.ImportDevices(context.Background(), testTenant(), "comp_1", csv)

	var qe *usecase.QuotaExceededError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, usecase.ActionCreateDevice, qe.Kind)
	assert.Equal(t, 9, qe.Current)
	assert.Len(t, store.devices, 9, "el lote no entra ni parcialmente")
}

func TestImportDevices_LoteValidoSeImportaCompleto(t *testing.T) {
	store := newMemStore()
	svc := newImportService(store)

	csv := "device_type,brand,serial_number,warranty_end_date\n" +
		"laptop,Dell,SN1,2027-01-15\n" +
		"printer,HP,SN2,\n"
	result, err := svc.ImportDevices(context.Background(), testTenant(), "comp_1", csv)

	require.NoError(t, err)
	assert.Equal(t, 2, result.RowsParsed)
	assert.Equal(t, 2, result.Success)
	assert.Empty(t, result.Errors)
	require.Len(t, store.devices, 2)
	assert.Equal(t, "comp_1", store.devices[0].CompanyID)
	require.NotNil(t, store.devices[0].WarrantyEnd)
	assert.Nil(t, store.devices[1].WarrantyEnd, "fecha opcional vacía queda sin vencimiento")
}

func TestImportDevices_FalloDePersistenciaNoAbortaElResto(t *testing.T) {
	store := newMemStore()
	store.failSerial = "SN2"
	svc := newImportService(store)

	csv := "device_type,serial_number\nlaptop,SN1\nlaptop,SN2\nlaptop,SN3\n"
	result, err := svc.ImportDevices(context.Background(), testTenant(), "comp_1", csv)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row, "la fila fallida se reporta con numeración de archivo")
	assert.Len(t, store.devices, 2)
}

func TestImportUsers_RolInvalidoBajaAStaff(t *testing.T) {
	store := newMemStore()
	svc := newImportService(store)

	csv := "name,email,role\nAna,ana@acme.com,superadmin\n"
	result, err := svc.ImportUsers(context.Background(), testTenant(), csv)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	require.Len(t, store.users, 1)
	assert.Equal(t, entity.RoleStaff, store.users[0].Role)
	assert.NotEmpty(t, store.users[0].PasswordHash)
}

func TestImportCompanies_ArchivoVacioNoEsError(t *testing.T) {
	store := newMemStore()
	svc := newImportService(store)

	result, err := svc.ImportCompanies(context.Background(), testTenant(), "")

	require.NoError(t, err)
	assert.Equal(t, 0, result.RowsParsed)
	assert.Equal(t, 0, result.Success)
}
