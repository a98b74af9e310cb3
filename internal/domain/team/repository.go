package team

import "context"

// Repository describes team and division persistence needs from use cases.
type Repository interface {
	ListTeams(ctx context.Context) ([]Team, error)
	GetTeamByID(ctx context.Context, teamID string) (Team, bool, error)
	UpsertTeams(ctx context.Context, teams []Team) error

	ListDivisions(ctx context.Context, seasonID string) ([]Division, error)
	GetDivision(ctx context.Context, seasonID, divisionID string) (Division, bool, error)
	ReplaceDivisions(ctx context.Context, seasonID string, divisions []Division) error
}
