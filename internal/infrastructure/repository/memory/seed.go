package memory

import (
	"strconv"
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/statline"
	"github.com/riskibarqy/league-reference/internal/domain/team"
)

const (
	SeasonIDFirst  = "season-1"
	SeasonIDSecond = "season-2"

	DivisionIDHarbor = "harbor"
	DivisionIDSummit = "summit"

	// SeedSeasonDays covers the regular season plus a short postseason.
	SeedSeasonDays = 104
	// seedPlayedDays is how many days of the current season have finished.
	seedPlayedDays = 60
)

func SeedSeasons() []season.Season {
	return []season.Season{
		{ID: SeasonIDFirst, Number: 1, Name: "Season 1", StartsAt: time.Date(2021, 3, 1, 16, 0, 0, 0, time.UTC)},
		{ID: SeasonIDSecond, Number: 2, Name: "Season 2", StartsAt: time.Date(2021, 3, 8, 16, 0, 0, 0, time.UTC)},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "harbor-gulls", Name: "Harbor Gulls", Nickname: "Gulls", Location: "Harbor City", Abbreviation: "HGL"},
		{ID: "pier-lanterns", Name: "Pier Lanterns", Nickname: "Lanterns", Location: "Pier Town", Abbreviation: "PLN"},
		{ID: "delta-otters", Name: "Delta Otters", Nickname: "Otters", Location: "Delta", Abbreviation: "DOT"},
		{ID: "summit-rams", Name: "Summit Rams", Nickname: "Rams", Location: "Summit", Abbreviation: "SRM"},
		{ID: "quarry-moles", Name: "Quarry Moles", Nickname: "Moles", Location: "Quarry Hill", Abbreviation: "QML"},
		{ID: "ridge-comets", Name: "Ridge Comets", Nickname: "Comets", Location: "High Ridge", Abbreviation: "RCM"},
	}
}

func SeedDivisions() []team.Division {
	out := make([]team.Division, 0, 4)
	for _, s := range SeedSeasons() {
		out = append(out,
			team.Division{ID: DivisionIDHarbor, SeasonID: s.ID, Name: "Harbor", TeamIDs: []string{"harbor-gulls", "pier-lanterns", "delta-otters"}},
			team.Division{ID: DivisionIDSummit, SeasonID: s.ID, Name: "Summit", TeamIDs: []string{"summit-rams", "quarry-moles", "ridge-comets"}},
		)
	}
	return out
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "p-ivy-brannock", Name: "Ivy Brannock", TeamID: "harbor-gulls", Position: "pitcher"},
		{ID: "p-otto-vance", Name: "Otto Vance", TeamID: "harbor-gulls", Position: "batter"},
		{ID: "p-mara-quill", Name: "Mara Quill", TeamID: "pier-lanterns", Position: "batter"},
		{ID: "p-dex-holloway", Name: "Dex Holloway", TeamID: "delta-otters", Position: "pitcher"},
		{ID: "p-juno-park", Name: "Juno Park", TeamID: "summit-rams", Position: "batter"},
		{ID: "p-rook-adair", Name: "Rook Adair", TeamID: "quarry-moles", Position: "pitcher"},
		{ID: "p-sable-finch", Name: "Sable Finch", TeamID: "ridge-comets", Position: "batter"},
	}
}

// SeedGames builds a full first season and a partially played second season. Every team plays
// once per day on a rotating schedule; scores are deterministic.
func SeedGames() []game.Game {
	teams := SeedTeams()
	out := make([]game.Game, 0, 2*SeedSeasonDays*len(teams)/2)
	for _, s := range SeedSeasons() {
		played := SeedSeasonDays
		if s.ID == SeasonIDSecond {
			played = seedPlayedDays
		}
		for day := 0; day < SeedSeasonDays; day++ {
			for i, pair := range rotation(len(teams), day) {
				home, away := teams[pair[0]], teams[pair[1]]
				g := game.Game{
					ID:         s.ID + "-d" + strconv.Itoa(day) + "-g" + strconv.Itoa(i),
					SeasonID:   s.ID,
					Day:        day,
					HomeTeamID: home.ID,
					AwayTeamID: away.ID,
					Weather:    (day*7 + i) % 19,
					GameStart:  day <= played,
				}
				if day < played {
					g.GameComplete = true
					g.Innings = game.RegulationInnings
					g.HomeScore = (day*3+pair[0]*5+s.Number)%9 + 1
					g.AwayScore = (day*5+pair[1]*3+s.Number*2)%8 + 1
					if g.HomeScore == g.AwayScore {
						// tied after nine, settled by a run in extras
						g.HomeScore++
						g.Innings += 1 + day%3
					}
				}
				out = append(out, g)
			}
		}
	}
	return out
}

// SeedStandings tallies the seeded games.
func SeedStandings() []standing.Standing {
	divisionOf := make(map[string]string)
	for _, d := range SeedDivisions() {
		if d.SeasonID != SeasonIDFirst {
			continue
		}
		for _, teamID := range d.TeamIDs {
			divisionOf[teamID] = d.ID
		}
	}

	games := SeedGames()
	out := make([]standing.Standing, 0)
	for _, s := range SeedSeasons() {
		seasonGames := make([]game.Game, 0)
		for _, g := range games {
			if g.SeasonID == s.ID {
				seasonGames = append(seasonGames, g)
			}
		}
		out = append(out, standing.Tally(s.ID, divisionOf, seasonGames)...)
	}
	return out
}

func SeedBattingLines() []playerstats.BattingLine {
	return []playerstats.BattingLine{
		{PlayerID: "p-otto-vance", SeasonID: SeasonIDFirst, TeamID: "harbor-gulls", Batting: statline.Batting{PlateAppearances: 420, AtBats: 380, Hits: 112, Doubles: 21, Triples: 3, HomeRuns: 17, Walks: 34, HitByPitch: 2, SacrificeFlies: 4, Strikeouts: 88, Runs: 61, RunsBattedIn: 70, StolenBases: 6}},
		{PlayerID: "p-otto-vance", SeasonID: SeasonIDSecond, TeamID: "harbor-gulls", Batting: statline.Batting{PlateAppearances: 240, AtBats: 215, Hits: 70, Doubles: 14, Triples: 1, HomeRuns: 12, Walks: 21, HitByPitch: 1, SacrificeFlies: 3, Strikeouts: 45, Runs: 38, RunsBattedIn: 44, StolenBases: 2}},
		{PlayerID: "p-mara-quill", SeasonID: SeasonIDFirst, TeamID: "pier-lanterns", Batting: statline.Batting{PlateAppearances: 455, AtBats: 401, Hits: 131, Doubles: 30, Triples: 6, HomeRuns: 9, Walks: 48, HitByPitch: 3, SacrificeFlies: 3, Strikeouts: 59, Runs: 80, RunsBattedIn: 52, StolenBases: 24}},
		{PlayerID: "p-juno-park", SeasonID: SeasonIDFirst, TeamID: "summit-rams", Batting: statline.Batting{PlateAppearances: 398, AtBats: 360, Hits: 90, Doubles: 18, Triples: 2, HomeRuns: 25, Walks: 33, HitByPitch: 4, SacrificeFlies: 1, Strikeouts: 120, Runs: 66, RunsBattedIn: 81, StolenBases: 1}},
		{PlayerID: "p-sable-finch", SeasonID: SeasonIDSecond, TeamID: "ridge-comets", Batting: statline.Batting{PlateAppearances: 230, AtBats: 204, Hits: 61, Doubles: 9, Triples: 4, HomeRuns: 4, Walks: 22, HitByPitch: 2, SacrificeFlies: 2, Strikeouts: 37, Runs: 35, RunsBattedIn: 22, StolenBases: 15}},
	}
}

func SeedPitchingLines() []playerstats.PitchingLine {
	return []playerstats.PitchingLine{
		{PlayerID: "p-ivy-brannock", SeasonID: SeasonIDFirst, TeamID: "harbor-gulls", Pitching: statline.Pitching{Games: 20, Wins: 12, Losses: 5, Outs: 390, RunsAllowed: 48, EarnedRuns: 44, HitsAllowed: 110, Walks: 31, Strikeouts: 142, HomeRunsAllowed: 11}},
		{PlayerID: "p-ivy-brannock", SeasonID: SeasonIDSecond, TeamID: "harbor-gulls", Pitching: statline.Pitching{Games: 2, Wins: 0, Losses: 2, Outs: 9, RunsAllowed: 11, EarnedRuns: 10, HitsAllowed: 12, Walks: 5, Strikeouts: 2, HomeRunsAllowed: 3}},
		{PlayerID: "p-dex-holloway", SeasonID: SeasonIDFirst, TeamID: "delta-otters", Pitching: statline.Pitching{Games: 21, Wins: 9, Losses: 9, Outs: 372, RunsAllowed: 60, EarnedRuns: 55, HitsAllowed: 128, Walks: 40, Strikeouts: 101, HomeRunsAllowed: 15}},
		{PlayerID: "p-rook-adair", SeasonID: SeasonIDSecond, TeamID: "quarry-moles", Pitching: statline.Pitching{Games: 12, Wins: 7, Losses: 3, Outs: 231, RunsAllowed: 25, EarnedRuns: 22, HitsAllowed: 62, Walks: 18, Strikeouts: 90, HomeRunsAllowed: 5}},
	}
}

// rotation pairs n teams (n even) for one day using the circle method.
func rotation(n, day int) [][2]int {
	idx := make([]int, n)
	idx[0] = 0
	for i := 1; i < n; i++ {
		idx[i] = 1 + (i-1+day)%(n-1)
	}

	pairs := make([][2]int, 0, n/2)
	for i := 0; i < n/2; i++ {
		a, b := idx[i], idx[n-1-i]
		if day%2 == 1 {
			a, b = b, a
		}
		pairs = append(pairs, [2]int{a, b})
	}
	return pairs
}
