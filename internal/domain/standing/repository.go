package standing

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Standing, error)
	ListByDivision(ctx context.Context, seasonID, divisionID string) ([]Standing, error)
	ReplaceBySeason(ctx context.Context, seasonID string, standings []Standing) error
}
