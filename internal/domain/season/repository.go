package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	Upsert(ctx context.Context, seasons []Season) error
}
