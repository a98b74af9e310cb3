package httpapi

import (
	"math"
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/schedule"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/statline"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

type seasonDTO struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
}

type scheduleDTO struct {
	Season       seasonDTO        `json:"season"`
	TotalGames   int              `json:"total_games"`
	VisibleGames int              `json:"visible_games"`
	Days         []scheduleDayDTO `json:"days"`
}

type scheduleDayDTO struct {
	Date       string            `json:"date"`
	DayOfMonth int               `json:"day_of_month"`
	Hours      []scheduleHourDTO `json:"hours"`
}

type scheduleHourDTO struct {
	Hour  int               `json:"hour"`
	Games []scheduleGameDTO `json:"games"`
}

// scheduleGameDTO hides scores and outcome until the game is visible on site.
type scheduleGameDTO struct {
	ID            string `json:"id"`
	Day           int    `json:"day"`
	HomeTeamID    string `json:"home_team_id"`
	AwayTeamID    string `json:"away_team_id"`
	VisibleOnSite bool   `json:"visible_on_site"`
	HomeScore     *int   `json:"home_score,omitempty"`
	AwayScore     *int   `json:"away_score,omitempty"`
	GameComplete  *bool  `json:"game_complete,omitempty"`
	Innings       *int   `json:"innings,omitempty"`
	Weather       int    `json:"weather"`
}

type standingTableDTO struct {
	DivisionID   string            `json:"division_id"`
	DivisionName string            `json:"division_name"`
	Rows         []standingRowDTO  `json:"rows"`
	Totals       standingTotalsDTO `json:"totals"`
}

type standingRowDTO struct {
	TeamID          string              `json:"team_id"`
	Wins            int                 `json:"wins"`
	Losses          int                 `json:"losses"`
	WinPct          *float64            `json:"win_pct"`
	GamesPlayed     int                 `json:"games_played"`
	RunsScored      int                 `json:"runs_scored"`
	RunsAllowed     int                 `json:"runs_allowed"`
	RunDifferential int                 `json:"run_differential"`
	Streak          string              `json:"streak"`
	Splits          map[string]splitDTO `json:"splits"`
}

type splitDTO struct {
	Wins   *int     `json:"wins"`
	Losses *int     `json:"losses"`
	Pct    *float64 `json:"pct"`
}

type standingTotalsDTO struct {
	Wins            int      `json:"wins"`
	Losses          int      `json:"losses"`
	WinPct          *float64 `json:"win_pct"`
	GamesPlayed     int      `json:"games_played"`
	RunsScored      int      `json:"runs_scored"`
	RunsAllowed     int      `json:"runs_allowed"`
	RunDifferential int      `json:"run_differential"`
}

type playerCareerDTO struct {
	PlayerID string           `json:"player_id"`
	Name     string           `json:"name"`
	TeamID   string           `json:"team_id,omitempty"`
	Position string           `json:"position,omitempty"`
	Batting  battingTableDTO  `json:"batting"`
	Pitching pitchingTableDTO `json:"pitching"`
}

type battingTableDTO struct {
	Seasons []battingLineDTO `json:"seasons"`
	Career  battingLineDTO   `json:"career"`
}

type pitchingTableDTO struct {
	Seasons []pitchingLineDTO `json:"seasons"`
	Career  pitchingLineDTO   `json:"career"`
}

type battingLineDTO struct {
	SeasonID         string   `json:"season_id,omitempty"`
	TeamID           string   `json:"team_id,omitempty"`
	PlateAppearances int      `json:"plate_appearances"`
	AtBats           int      `json:"at_bats"`
	Hits             int      `json:"hits"`
	Singles          int      `json:"singles"`
	Doubles          int      `json:"doubles"`
	Triples          int      `json:"triples"`
	HomeRuns         int      `json:"home_runs"`
	Walks            int      `json:"walks"`
	Strikeouts       int      `json:"strikeouts"`
	Runs             int      `json:"runs"`
	RunsBattedIn     int      `json:"runs_batted_in"`
	StolenBases      int      `json:"stolen_bases"`
	TotalBases       int      `json:"total_bases"`
	Average          *float64 `json:"avg"`
	OnBasePct        *float64 `json:"obp"`
	Slugging         *float64 `json:"slg"`
	OPS              *float64 `json:"ops"`
}

type pitchingLineDTO struct {
	SeasonID        string   `json:"season_id,omitempty"`
	TeamID          string   `json:"team_id,omitempty"`
	Games           int      `json:"games"`
	Wins            int      `json:"wins"`
	Losses          int      `json:"losses"`
	Outs            int      `json:"outs"`
	Innings         float64  `json:"innings"`
	RunsAllowed     int      `json:"runs_allowed"`
	EarnedRuns      int      `json:"earned_runs"`
	HitsAllowed     int      `json:"hits_allowed"`
	Walks           int      `json:"walks"`
	Strikeouts      int      `json:"strikeouts"`
	HomeRunsAllowed int      `json:"home_runs_allowed"`
	ERA             *float64 `json:"era"`
	WHIP            *float64 `json:"whip"`
	StrikeoutsPer9  *float64 `json:"k_per_9"`
	HomeRunsPer9    *float64 `json:"hr_per_9"`
}

type searchResultDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// finite drops NaN and infinities, which JSON cannot carry.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func seasonToDTO(item season.Season) seasonDTO {
	return seasonDTO{
		ID:       item.ID,
		Number:   item.Number,
		Name:     item.Name,
		StartsAt: item.StartsAt.UTC().Format(time.RFC3339),
	}
}

func scheduleToDTO(item usecase.Schedule) scheduleDTO {
	days := make([]scheduleDayDTO, 0, len(item.Days))
	for _, bucket := range item.Days {
		days = append(days, scheduleDayToDTO(bucket))
	}

	return scheduleDTO{
		Season:       seasonToDTO(item.Season),
		TotalGames:   item.TotalGames,
		VisibleGames: item.VisibleGames,
		Days:         days,
	}
}

func scheduleDayToDTO(bucket schedule.DayBucket) scheduleDayDTO {
	hours := make([]scheduleHourDTO, 0, len(bucket.Hours))
	for _, slot := range bucket.Hours {
		games := make([]scheduleGameDTO, 0, len(slot.Games))
		for _, g := range slot.Games {
			dto := scheduleGameDTO{
				ID:            g.ID,
				Day:           g.Day,
				HomeTeamID:    g.HomeTeamID,
				AwayTeamID:    g.AwayTeamID,
				VisibleOnSite: g.VisibleOnSite,
				Weather:       g.Weather,
			}
			if g.VisibleOnSite {
				home, away, complete := g.HomeScore, g.AwayScore, g.GameComplete
				dto.HomeScore = &home
				dto.AwayScore = &away
				dto.GameComplete = &complete
				if g.Innings > 0 {
					innings := g.Innings
					dto.Innings = &innings
				}
			}
			games = append(games, dto)
		}
		hours = append(hours, scheduleHourDTO{Hour: slot.Hour, Games: games})
	}

	return scheduleDayDTO{
		Date:       bucket.Date.Format(time.DateOnly),
		DayOfMonth: bucket.DayOfMonth,
		Hours:      hours,
	}
}

func standingTableToDTO(table usecase.StandingTable) standingTableDTO {
	rows := make([]standingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, standingRowToDTO(row))
	}

	return standingTableDTO{
		DivisionID:   table.Division.ID,
		DivisionName: table.Division.Name,
		Rows:         rows,
		Totals: standingTotalsDTO{
			Wins:            table.Totals.Wins,
			Losses:          table.Totals.Losses,
			WinPct:          finite(table.Totals.WinPct),
			GamesPlayed:     table.Totals.GamesPlayed,
			RunsScored:      table.Totals.RunsScored,
			RunsAllowed:     table.Totals.RunsAllowed,
			RunDifferential: table.Totals.RunDifferential,
		},
	}
}

func standingRowToDTO(row standing.Standing) standingRowDTO {
	splits := make(map[string]splitDTO, len(row.Splits))
	for key, record := range row.Splits {
		split := splitDTO{Wins: record.Wins, Losses: record.Losses}
		if pct, ok := row.SplitPct(key); ok {
			split.Pct = finite(pct)
		}
		splits[key] = split
	}

	return standingRowDTO{
		TeamID:          row.TeamID,
		Wins:            row.Wins,
		Losses:          row.Losses,
		WinPct:          finite(row.WinPct()),
		GamesPlayed:     row.GamesPlayed(),
		RunsScored:      row.RunsScored,
		RunsAllowed:     row.RunsAllowed,
		RunDifferential: row.RunDifferential(),
		Streak:          row.Streak.Code(),
		Splits:          splits,
	}
}

func playerCareerToDTO(career usecase.PlayerCareer) playerCareerDTO {
	batting := make([]battingLineDTO, 0, len(career.Batting.Seasons))
	for _, line := range career.Batting.Seasons {
		batting = append(batting, battingSeasonToDTO(line))
	}
	pitching := make([]pitchingLineDTO, 0, len(career.Pitching.Seasons))
	for _, line := range career.Pitching.Seasons {
		pitching = append(pitching, pitchingSeasonToDTO(line))
	}

	return playerCareerDTO{
		PlayerID: career.Player.ID,
		Name:     career.Player.Name,
		TeamID:   career.Player.TeamID,
		Position: career.Player.Position,
		Batting: battingTableDTO{
			Seasons: batting,
			Career:  battingToDTO(career.Batting.Career),
		},
		Pitching: pitchingTableDTO{
			Seasons: pitching,
			Career:  pitchingToDTO(career.Pitching.Career),
		},
	}
}

func battingSeasonToDTO(line playerstats.BattingLine) battingLineDTO {
	dto := battingToDTO(line.Batting)
	dto.SeasonID = line.SeasonID
	dto.TeamID = line.TeamID
	return dto
}

func battingToDTO(b statline.Batting) battingLineDTO {
	return battingLineDTO{
		PlateAppearances: b.PlateAppearances,
		AtBats:           b.AtBats,
		Hits:             b.Hits,
		Singles:          b.Singles(),
		Doubles:          b.Doubles,
		Triples:          b.Triples,
		HomeRuns:         b.HomeRuns,
		Walks:            b.Walks,
		Strikeouts:       b.Strikeouts,
		Runs:             b.Runs,
		RunsBattedIn:     b.RunsBattedIn,
		StolenBases:      b.StolenBases,
		TotalBases:       b.TotalBases(),
		Average:          finite(b.Average()),
		OnBasePct:        finite(b.OnBasePercentage()),
		Slugging:         finite(b.Slugging()),
		OPS:              finite(b.OnBasePlusSlugging()),
	}
}

func pitchingSeasonToDTO(line playerstats.PitchingLine) pitchingLineDTO {
	dto := pitchingToDTO(line.Pitching)
	dto.SeasonID = line.SeasonID
	dto.TeamID = line.TeamID
	return dto
}

func pitchingToDTO(p statline.Pitching) pitchingLineDTO {
	return pitchingLineDTO{
		Games:           p.Games,
		Wins:            p.Wins,
		Losses:          p.Losses,
		Outs:            p.Outs,
		Innings:         p.Innings(),
		RunsAllowed:     p.RunsAllowed,
		EarnedRuns:      p.EarnedRuns,
		HitsAllowed:     p.HitsAllowed,
		Walks:           p.Walks,
		Strikeouts:      p.Strikeouts,
		HomeRunsAllowed: p.HomeRunsAllowed,
		ERA:             finite(p.ERA()),
		WHIP:            finite(p.WHIP()),
		StrikeoutsPer9:  finite(p.StrikeoutsPerNine()),
		HomeRunsPer9:    finite(p.HomeRunsPerNine()),
	}
}
