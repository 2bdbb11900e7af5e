// Package kardex contiene la lógica pura del libro de movimientos:
// saldo corrido y suma con signo. La existencia materializada en StockEntry
// debe coincidir siempre con el saldo terminal de RunningBalance.
package kardex

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// Entry es un movimiento con su saldo acumulado después de aplicarlo.
type Entry struct {
	Movement *entity.Movement
	Saldo    int64
}

// RunningBalance recorre los movimientos en orden (fecha asc, id asc) y
// acumula +cantidad para entradas y -cantidad para salidas.
func RunningBalance(movs []*entity.Movement) []Entry {
	entries := make([]Entry, 0, len(movs))
	var saldo int64
	for _, m := range movs {
		saldo += Signed(m)
		entries = append(entries, Entry{Movement: m, Saldo: saldo})
	}
	return entries
}

// SignedSum devuelve la suma con signo de todos los movimientos: el saldo final.
func SignedSum(movs []*entity.Movement) int64 {
	var saldo int64
	for _, m := range movs {
		saldo += Signed(m)
	}
	return saldo
}

// Signed devuelve la cantidad con signo según el tipo de movimiento.
func Signed(m *entity.Movement) int64 {
	if m.Tipo == entity.MovementTypeEntrada {
		return m.Cantidad
	}
	return -m.Cantidad
}
