package repository

import (
	"context"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

// AbonoRepository define el puerto de lectura de abonos.
type AbonoRepository interface {
	// ListSinPeriodos devuelve los abonos que no tienen ningún PeriodoAbono. El orden no está definido.
	ListSinPeriodos(ctx context.Context) ([]*entity.Abono, error)
}
