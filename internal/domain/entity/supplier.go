package entity

// Supplier representa un proveedor de refacciones.
type Supplier struct {
	ID        int64
	Nombre    string
	RFC       string
	Telefono  string
	Email     string
	Direccion string
	Activo    bool
}
