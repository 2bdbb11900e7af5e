package entity

// Part representa una refacción del catálogo del taller.
// La clave es única y nunca se reutiliza una vez referenciada por un movimiento.
type Part struct {
	ID           int64
	Clave        string
	Descripcion  string
	UnidadMedida string // "pieza" por defecto
}
