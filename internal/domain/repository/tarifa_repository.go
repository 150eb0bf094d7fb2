package repository

import (
	"context"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

// TarifaRepository define el puerto de lectura de tarifas por playa.
type TarifaRepository interface {
	// FindLatestByPlaya devuelve la tarifa con FechaDesde más reciente de la playa (nil si no hay).
	FindLatestByPlaya(ctx context.Context, playaID string) (*entity.TarifaServicio, error)
}
