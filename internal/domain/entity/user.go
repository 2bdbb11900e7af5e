package entity

// Roles de la aplicación. El middleware RBAC decide con el rol del token,
// sin consultar la base de datos.
const (
	RoleAdmin    = "admin"
	RoleAlmacen  = "almacen"
	RoleCompras  = "compras"
	RoleMecanico = "mecanico"
	RoleAuditor  = "auditor"
)

// User representa un usuario del sistema.
type User struct {
	ID             int64
	Username       string
	Nombre         string
	HashedPassword string
	Activo         bool
	Role           string
}
