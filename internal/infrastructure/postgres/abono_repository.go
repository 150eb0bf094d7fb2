package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

var _ repository.AbonoRepository = (*AbonoRepo)(nil)

// AbonoRepo implementación de AbonoRepository sobre PostgreSQL.
type AbonoRepo struct {
	q Querier
}

// NewAbonoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAbonoRepository(q Querier) *AbonoRepo {
	return &AbonoRepo{q: q}
}

// ListSinPeriodos lista los abonos sin ningún registro en periodos_abono.
func (r *AbonoRepo) ListSinPeriodos(ctx context.Context) ([]*entity.Abono, error) {
	query := `
		SELECT a.playa_id, a.plaza_nro, a.fecha_inicio, a.fecha_fin, a.monto, a.estado_pago
		FROM abonos a
		WHERE NOT EXISTS (
			SELECT 1 FROM periodos_abono p
			WHERE p.playa_id = a.playa_id AND p.plaza_nro = a.plaza_nro AND p.abono_fecha_inicio = a.fecha_inicio
		)`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list abonos sin periodos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Abono
	for rows.Next() {
		var a entity.Abono
		if err := rows.Scan(&a.PlayaID, &a.PlazaNro, &a.FechaInicio, &a.FechaFin, &a.Monto, &a.EstadoPago); err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
