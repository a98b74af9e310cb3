package playerstats

import "context"

type Repository interface {
	ListBattingByPlayer(ctx context.Context, playerID string) ([]BattingLine, error)
	ListPitchingByPlayer(ctx context.Context, playerID string) ([]PitchingLine, error)
	ReplaceBySeason(ctx context.Context, seasonID string, batting []BattingLine, pitching []PitchingLine) error
}
