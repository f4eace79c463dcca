package entity

// UsageCounters es el consumo actual de recursos de un tenant, calculado por
// el repositorio sobre estado confirmado. Es un valor derivado: nunca se
// cachea más allá de una verificación de cuota para no leer datos obsoletos.
type UsageCounters struct {
	DeviceCount  int
	UserCount    int
	CompanyCount int
}
