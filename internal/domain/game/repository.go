package game

import "context"

// Repository exposes games of a season ordered by Day, then ID.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Game, error)
	ReplaceBySeason(ctx context.Context, seasonID string, games []Game) error
}
