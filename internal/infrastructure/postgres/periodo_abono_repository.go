package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

var _ repository.PeriodoAbonoRepository = (*PeriodoAbonoRepo)(nil)

// PeriodoAbonoRepo implementación de PeriodoAbonoRepository (usable con pool o tx).
type PeriodoAbonoRepo struct {
	q Querier
}

// NewPeriodoAbonoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPeriodoAbonoRepository(q Querier) *PeriodoAbonoRepo {
	return &PeriodoAbonoRepo{q: q}
}

const insertPeriodoSQL = `
	INSERT INTO periodos_abono (playa_id, plaza_nro, abono_fecha_inicio, numero_periodo, fecha_inicio, fecha_fin, monto, pagado, fecha_pago)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// CreateMany inserta los períodos en un único batch. Para que sea atómico debe usarse con una tx.
func (r *PeriodoAbonoRepo) CreateMany(ctx context.Context, periodos []*entity.PeriodoAbono) error {
	if len(periodos) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range periodos {
		batch.Queue(insertPeriodoSQL,
			p.PlayaID, p.PlazaNro, p.AbonoFechaInicio, p.NumeroPeriodo,
			p.FechaInicio, p.FechaFin, p.Monto, p.Pagado, p.FechaPago,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for _, p := range periodos {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("periodo %d de %s: %w", p.NumeroPeriodo, p.AbonoKey(), domain.ErrDuplicate)
			}
			return fmt.Errorf("insert periodo %d de %s: %w", p.NumeroPeriodo, p.AbonoKey(), err)
		}
	}
	return nil
}

// ListByAbono devuelve los períodos de un abono ordenados por número.
func (r *PeriodoAbonoRepo) ListByAbono(ctx context.Context, key entity.AbonoKey) ([]*entity.PeriodoAbono, error) {
	query := `
		SELECT playa_id, plaza_nro, abono_fecha_inicio, numero_periodo, fecha_inicio, fecha_fin, monto, pagado, fecha_pago
		FROM periodos_abono
		WHERE playa_id = $1 AND plaza_nro = $2 AND abono_fecha_inicio = $3
		ORDER BY numero_periodo`
	rows, err := r.q.Query(ctx, query, key.PlayaID, key.PlazaNro, key.FechaInicio)
	if err != nil {
		return nil, fmt.Errorf("list periodos: %w", err)
	}
	defer rows.Close()
	var list []*entity.PeriodoAbono
	for rows.Next() {
		var p entity.PeriodoAbono
		if err := rows.Scan(&p.PlayaID, &p.PlazaNro, &p.AbonoFechaInicio, &p.NumeroPeriodo,
			&p.FechaInicio, &p.FechaFin, &p.Monto, &p.Pagado, &p.FechaPago); err != nil {
			return nil, fmt.Errorf("scan periodo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
