package game

// Game is one scheduled contest. Day is the sequential in-season day index starting at 0.
type Game struct {
	ID           string
	SeasonID     string
	Day          int
	HomeTeamID   string
	AwayTeamID   string
	HomeScore    int
	AwayScore    int
	GameComplete bool
	GameStart    bool
	Weather      int
	// Innings played; 0 when the source did not report it.
	Innings int
}

const RegulationInnings = 9

// WentToExtras reports whether a completed game needed more than the regulation innings.
func (g Game) WentToExtras() bool {
	return g.GameComplete && g.Innings > RegulationInnings
}

// WinnerTeamID returns the winning side of a completed game, or "" otherwise.
func (g Game) WinnerTeamID() string {
	if !g.GameComplete || g.HomeScore == g.AwayScore {
		return ""
	}
	if g.HomeScore > g.AwayScore {
		return g.HomeTeamID
	}
	return g.AwayTeamID
}
