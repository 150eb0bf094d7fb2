package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// ServicioRepo implementación de ServicioRepository sobre PostgreSQL.
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador.
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

// FindFirstByNombreContains busca el primer servicio cuyo nombre contiene fragment.
// Se ordena por id para que "el primero" sea estable entre corridas.
func (r *ServicioRepo) FindFirstByNombreContains(ctx context.Context, fragment string) (*entity.Servicio, error) {
	query := `
		SELECT id, nombre, duracion_minutos
		FROM servicios
		WHERE strpos(nombre, $1) > 0
		ORDER BY id
		LIMIT 1`
	var s entity.Servicio
	err := r.q.QueryRow(ctx, query, fragment).Scan(&s.ID, &s.Nombre, &s.DuracionMinutos)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find servicio: %w", err)
	}
	return &s, nil
}
