package abonos

import (
	"fmt"

	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

// CommitError indica que falló el commit único del backfill. Keys lista todos los abonos
// cuyos períodos quedaron sin persistir, para reintentar solo ese subconjunto.
type CommitError struct {
	Keys []entity.AbonoKey
	Err  error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit de períodos para %d abonos: %v", len(e.Keys), e.Err)
}

// Unwrap permite errors.Is(err, domain.ErrCommitFailed) y sobre la causa original.
func (e *CommitError) Unwrap() []error {
	return []error{domain.ErrCommitFailed, e.Err}
}
