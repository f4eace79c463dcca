package importer

// Tipos de importación soportados.
const (
	KindDevices   = "devices"
	KindCompanies = "companies"
	KindUsers     = "users"
)

// Tipos de dato de columna. Las fechas usan el formato de la API
// ("2006-01-02"); el resto es texto libre.
const (
	colText  = "text"
	colDate  = "date"
	colEmail = "email"
)

// Column describe una columna esperada en el archivo.
// Label es el nombre que ve el usuario en los mensajes de error.
type Column struct {
	Name     string
	Label    string
	Type     string
	Required bool
}

// Schema es el contrato de columnas de un tipo de importación.
type Schema struct {
	Kind    string
	Columns []Column
}

// SchemaFor devuelve el esquema del tipo pedido (ok=false si no existe).
func SchemaFor(kind string) (Schema, bool) {
	s, ok := schemas[kind]
	return s, ok
}

var schemas = map[string]Schema{
	KindDevices: {
		Kind: KindDevices,
		Columns: []Column{
			{Name: "device_type", Label: "Device Type", Type: colText, Required: true},
			{Name: "brand", Label: "Brand", Type: colText},
			{Name: "model", Label: "Model", Type: colText},
			{Name: "serial_number", Label: "Serial Number", Type: colText, Required: true},
			{Name: "asset_tag", Label: "Asset Tag", Type: colText},
			{Name: "purchase_date", Label: "Purchase Date", Type: colDate},
			{Name: "warranty_end_date", Label: "Warranty End Date", Type: colDate},
		},
	},
	KindCompanies: {
		Kind: KindCompanies,
		Columns: []Column{
			{Name: "name", Label: "Company Name", Type: colText, Required: true},
			{Name: "gst_number", Label: "GST Number", Type: colText},
			{Name: "address", Label: "Address", Type: colText},
			{Name: "contact_name", Label: "Contact Name", Type: colText, Required: true},
			{Name: "contact_email", Label: "Contact Email", Type: colEmail},
			{Name: "contact_phone", Label: "Contact Phone", Type: colText},
		},
	},
	KindUsers: {
		Kind: KindUsers,
		Columns: []Column{
			{Name: "name", Label: "Name", Type: colText, Required: true},
			{Name: "email", Label: "Email", Type: colEmail, Required: true},
			{Name: "phone", Label: "Phone", Type: colText},
			{Name: "role", Label: "Role", Type: colText},
		},
	},
}
