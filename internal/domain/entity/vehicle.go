package entity

// Vehicle representa un vehículo de la flotilla municipal.
type Vehicle struct {
	ID              int64
	NumeroEconomico string
	Tipo            string
	Placas          string
	Marca           string
	Modelo          string
	Anio            int
	NumeroSerie     string
	AreaAsignada    string
}
