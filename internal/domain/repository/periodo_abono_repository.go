package repository

import (
	"context"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

// PeriodoAbonoRepository define el puerto de persistencia para PeriodoAbono.
// Solo inserta: el backfill nunca actualiza ni borra períodos existentes.
type PeriodoAbonoRepository interface {
	CreateMany(ctx context.Context, periodos []*entity.PeriodoAbono) error
	ListByAbono(ctx context.Context, key entity.AbonoKey) ([]*entity.PeriodoAbono, error)
}
