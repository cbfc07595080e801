package listings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// ListByStatus filtra por match exacto del status tal cual se recibe
	// (sin validar contra el enum) y ordena por created_at desc.
	ListByStatus(ctx context.Context, status Status) ([]Pet, error)

	// MarkAdopted setea status=ADOPTED y adopted_at en un solo write.
	// Devuelve ErrNotFound del adapter si el id no existe.
	MarkAdopted(ctx context.Context, id string, adoptedAt time.Time) error

	CountByStatus(ctx context.Context, status Status) (int, error)
}
