package repository

import (
	"context"

	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas reciben identificadores ya normalizados (ver User.NormalizedEmail/NormalizedUsername).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByNormalizedIdentifier busca un usuario cuyo email o username normalizado sea identifier.
	FindByNormalizedIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	ExistsByNormalized(ctx context.Context, email, username string) (bool, error)
}
