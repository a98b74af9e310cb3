package player

import "context"

type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Upsert(ctx context.Context, players []Player) error
}
