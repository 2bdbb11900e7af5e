package repository

import "github.com/tu-usuario/taller-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia del kardex (append-only).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByPart devuelve los movimientos de una refacción en orden de kardex:
	// fecha ascendente, desempate por id de inserción. Cada llamada reinicia
	// el recorrido (no es un cursor de un solo uso).
	ListByPart(partID int64) ([]*entity.Movement, error)
}
