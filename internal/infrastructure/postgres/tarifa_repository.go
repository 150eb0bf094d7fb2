package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

var _ repository.TarifaRepository = (*TarifaRepo)(nil)

// TarifaRepo implementación de TarifaRepository sobre PostgreSQL.
type TarifaRepo struct {
	q Querier
}

// NewTarifaRepository construye el adaptador.
func NewTarifaRepository(q Querier) *TarifaRepo {
	return &TarifaRepo{q: q}
}

// FindLatestByPlaya devuelve la tarifa más reciente (por fecha_desde) de la playa, sin filtrar por fecha actual.
func (r *TarifaRepo) FindLatestByPlaya(ctx context.Context, playaID string) (*entity.TarifaServicio, error) {
	query := `
		SELECT id, playa_id, servicio_id, fecha_desde, monto
		FROM tarifas_servicio
		WHERE playa_id = $1
		ORDER BY fecha_desde DESC
		LIMIT 1`
	var t entity.TarifaServicio
	err := r.q.QueryRow(ctx, query, playaID).Scan(&t.ID, &t.PlayaID, &t.ServicioID, &t.FechaDesde, &t.Monto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find tarifa: %w", err)
	}
	return &t, nil
}
