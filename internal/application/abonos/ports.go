package abonos

import (
	"context"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

// PeriodosTxRunner ejecuta fn dentro de una transacción con un repositorio de períodos atado a ella.
// Si fn retorna error (o falla el commit) no queda ningún período persistido.
type PeriodosTxRunner interface {
	RunPeriodos(ctx context.Context, fn func(periodoRepo repository.PeriodoAbonoRepository) error) error
}
