// Package wire holds the JSON payloads served by the reference API and stored in snapshot
// directories, plus their mapping onto domain types.
package wire

import (
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/statline"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

// Kinds of per-season documents.
const (
	KindRoster      = "roster"
	KindGames       = "games"
	KindStandings   = "standings"
	KindPlayerStats = "player-stats"
)

type Season struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	StartsAt string `json:"startsAt"`
}

type Team struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Nickname  string `json:"nickname"`
	Location  string `json:"location"`
	Shorthand string `json:"shorthand"`
}

type Division struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TeamID   string `json:"teamId"`
	Position string `json:"position"`
}

type Roster struct {
	Teams     []Team     `json:"teams"`
	Divisions []Division `json:"divisions"`
	Players   []Player   `json:"players"`
}

type Game struct {
	ID           string `json:"id"`
	Day          int    `json:"day"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	GameComplete bool   `json:"gameComplete"`
	GameStart    bool   `json:"gameStart"`
	Weather      int    `json:"weather"`
	Innings      int    `json:"innings"`
}

type WinLoss struct {
	Wins   *int `json:"wins"`
	Losses *int `json:"losses"`
}

type Streak struct {
	Type   string `json:"type"`
	Number *int   `json:"number"`
}

type Standing struct {
	TeamID      string             `json:"teamId"`
	DivisionID  string             `json:"divisionId"`
	Wins        int                `json:"wins"`
	Losses      int                `json:"losses"`
	RunsScored  int                `json:"runsScored"`
	RunsAllowed int                `json:"runsAllowed"`
	Streak      *Streak            `json:"streak"`
	Splits      map[string]WinLoss `json:"splits"`
}

type BattingLine struct {
	PlayerID         string `json:"playerId"`
	TeamID           string `json:"teamId"`
	PlateAppearances int    `json:"plateAppearances"`
	AtBats           int    `json:"atBats"`
	Hits             int    `json:"hits"`
	Doubles          int    `json:"doubles"`
	Triples          int    `json:"triples"`
	HomeRuns         int    `json:"homeRuns"`
	Walks            int    `json:"walks"`
	HitByPitch       int    `json:"hitByPitch"`
	SacrificeFlies   int    `json:"sacrificeFlies"`
	Strikeouts       int    `json:"strikeouts"`
	Runs             int    `json:"runs"`
	RunsBattedIn     int    `json:"runsBattedIn"`
	StolenBases      int    `json:"stolenBases"`
}

type PitchingLine struct {
	PlayerID        string `json:"playerId"`
	TeamID          string `json:"teamId"`
	Games           int    `json:"games"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Outs            int    `json:"outs"`
	RunsAllowed     int    `json:"runsAllowed"`
	EarnedRuns      int    `json:"earnedRuns"`
	HitsAllowed     int    `json:"hitsAllowed"`
	Walks           int    `json:"walks"`
	Strikeouts      int    `json:"strikeouts"`
	HomeRunsAllowed int    `json:"homeRunsAllowed"`
}

type PlayerStats struct {
	Batting  []BattingLine  `json:"batting"`
	Pitching []PitchingLine `json:"pitching"`
}

// Decode parses one payload into target.
func Decode(raw []byte, target any) error {
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func ToSeasons(items []Season) ([]season.Season, error) {
	out := make([]season.Season, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		startsAt, err := time.Parse(time.RFC3339, strings.TrimSpace(item.StartsAt))
		if err != nil {
			return nil, fmt.Errorf("season %s startsAt %q: %w", id, item.StartsAt, err)
		}
		out = append(out, season.Season{
			ID:       id,
			Number:   item.Number,
			Name:     strings.TrimSpace(item.Name),
			StartsAt: startsAt.UTC(),
		})
	}
	return out, nil
}

func (r Roster) ToDomain(seasonID string) usecase.ExternalRoster {
	out := usecase.ExternalRoster{
		Teams:     make([]team.Team, 0, len(r.Teams)),
		Divisions: make([]team.Division, 0, len(r.Divisions)),
		Players:   make([]player.Player, 0, len(r.Players)),
	}
	for _, t := range r.Teams {
		if strings.TrimSpace(t.ID) == "" {
			continue
		}
		out.Teams = append(out.Teams, team.Team{
			ID:           strings.TrimSpace(t.ID),
			Name:         strings.TrimSpace(t.FullName),
			Nickname:     strings.TrimSpace(t.Nickname),
			Location:     strings.TrimSpace(t.Location),
			Abbreviation: strings.TrimSpace(t.Shorthand),
		})
	}
	for _, d := range r.Divisions {
		if strings.TrimSpace(d.ID) == "" {
			continue
		}
		out.Divisions = append(out.Divisions, team.Division{
			ID:       strings.TrimSpace(d.ID),
			SeasonID: seasonID,
			Name:     strings.TrimSpace(d.Name),
			TeamIDs:  append([]string{}, d.Teams...),
		})
	}
	for _, p := range r.Players {
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		out.Players = append(out.Players, player.Player{
			ID:       strings.TrimSpace(p.ID),
			Name:     strings.TrimSpace(p.Name),
			TeamID:   strings.TrimSpace(p.TeamID),
			Position: strings.TrimSpace(p.Position),
		})
	}
	return out
}

func ToGames(seasonID string, items []Game) []game.Game {
	out := make([]game.Game, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		out = append(out, game.Game{
			ID:           strings.TrimSpace(item.ID),
			SeasonID:     seasonID,
			Day:          item.Day,
			HomeTeamID:   item.HomeTeam,
			AwayTeamID:   item.AwayTeam,
			HomeScore:    item.HomeScore,
			AwayScore:    item.AwayScore,
			GameComplete: item.GameComplete,
			GameStart:    item.GameStart,
			Weather:      item.Weather,
			Innings:      item.Innings,
		})
	}
	return out
}

func ToStandings(seasonID string, items []Standing) []standing.Standing {
	out := make([]standing.Standing, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.TeamID) == "" {
			continue
		}
		row := standing.Standing{
			SeasonID:    seasonID,
			DivisionID:  strings.TrimSpace(item.DivisionID),
			TeamID:      strings.TrimSpace(item.TeamID),
			Wins:        item.Wins,
			Losses:      item.Losses,
			RunsScored:  item.RunsScored,
			RunsAllowed: item.RunsAllowed,
			Splits:      make(map[string]standing.WinLoss, len(item.Splits)),
		}
		if item.Streak != nil {
			row.Streak = standing.Streak{Type: item.Streak.Type, Number: item.Streak.Number}
		}
		for key, wl := range item.Splits {
			row.Splits[key] = standing.WinLoss{Wins: wl.Wins, Losses: wl.Losses}
		}
		out = append(out, row)
	}
	return out
}

func (s PlayerStats) ToDomain(seasonID string) usecase.ExternalPlayerStats {
	out := usecase.ExternalPlayerStats{
		Batting:  make([]playerstats.BattingLine, 0, len(s.Batting)),
		Pitching: make([]playerstats.PitchingLine, 0, len(s.Pitching)),
	}
	for _, line := range s.Batting {
		if strings.TrimSpace(line.PlayerID) == "" {
			continue
		}
		out.Batting = append(out.Batting, playerstats.BattingLine{
			PlayerID: line.PlayerID,
			SeasonID: seasonID,
			TeamID:   line.TeamID,
			Batting: statline.Batting{
				PlateAppearances: line.PlateAppearances,
				AtBats:           line.AtBats,
				Hits:             line.Hits,
				Doubles:          line.Doubles,
				Triples:          line.Triples,
				HomeRuns:         line.HomeRuns,
				Walks:            line.Walks,
				HitByPitch:       line.HitByPitch,
				SacrificeFlies:   line.SacrificeFlies,
				Strikeouts:       line.Strikeouts,
				Runs:             line.Runs,
				RunsBattedIn:     line.RunsBattedIn,
				StolenBases:      line.StolenBases,
			},
		})
	}
	for _, line := range s.Pitching {
		if strings.TrimSpace(line.PlayerID) == "" {
			continue
		}
		out.Pitching = append(out.Pitching, playerstats.PitchingLine{
			PlayerID: line.PlayerID,
			SeasonID: seasonID,
			TeamID:   line.TeamID,
			Pitching: statline.Pitching{
				Games:           line.Games,
				Wins:            line.Wins,
				Losses:          line.Losses,
				Outs:            line.Outs,
				RunsAllowed:     line.RunsAllowed,
				EarnedRuns:      line.EarnedRuns,
				HitsAllowed:     line.HitsAllowed,
				Walks:           line.Walks,
				Strikeouts:      line.Strikeouts,
				HomeRunsAllowed: line.HomeRunsAllowed,
			},
		})
	}
	return out
}
