package repository

import (
	"context"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

// ServicioRepository define el puerto de lectura de servicios.
type ServicioRepository interface {
	// FindFirstByNombreContains devuelve el primer servicio cuyo nombre contiene fragment (nil si no hay).
	FindFirstByNombreContains(ctx context.Context, fragment string) (*entity.Servicio, error)
}
