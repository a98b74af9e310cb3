// Package schedule lays a season's games onto the real-world calendar.
package schedule

import (
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/game"
)

const (
	// PostseasonBoundaryDay is the last regular-season day index.
	PostseasonBoundaryDay = 98
	// PostseasonStartHour is the UTC hour the first postseason day starts at.
	PostseasonStartHour = 13
)

// AnnotatedGame is a game plus whether the site may reveal it yet.
type AnnotatedGame struct {
	game.Game
	VisibleOnSite bool
}

// HourSlot holds the games played during one UTC hour, in input order.
type HourSlot struct {
	Hour  int
	Games []AnnotatedGame
}

// DayBucket holds every game played on one UTC calendar date.
type DayBucket struct {
	DayOfMonth int
	Date       time.Time
	Hours      []HourSlot
}

func (b *DayBucket) add(hour int, games []AnnotatedGame) {
	for i := range b.Hours {
		if b.Hours[i].Hour == hour {
			b.Hours[i].Games = append(b.Hours[i].Games, games...)
			return
		}
	}
	b.Hours = append(b.Hours, HourSlot{Hour: hour, Games: games})
}

// Bucketize maps games onto calendar days and hours. Each in-season day consumes one real
// hour starting at seasonStart; the day after PostseasonBoundaryDay starts on the next calendar
// date at PostseasonStartHour UTC.
//
// games must be sorted by Day ascending. A game is visible when it or the game immediately
// before it (across day boundaries) has started.
func Bucketize(seasonStart time.Time, games []game.Game) []DayBucket {
	buckets := make([]DayBucket, 0)
	byDate := make(map[time.Time]int)

	cursor := seasonStart.UTC()
	previousGameHasStarted := false

	for start := 0; start < len(games); {
		day := games[start].Day
		end := start + 1
		for end < len(games) && games[end].Day == day {
			end++
		}

		date := calendarDate(cursor)
		hour := cursor.Hour()

		annotated := make([]AnnotatedGame, 0, end-start)
		for _, g := range games[start:end] {
			annotated = append(annotated, AnnotatedGame{
				Game:          g,
				VisibleOnSite: previousGameHasStarted || g.GameStart,
			})
			previousGameHasStarted = g.GameStart
		}

		idx, ok := byDate[date]
		if !ok {
			buckets = append(buckets, DayBucket{DayOfMonth: date.Day(), Date: date})
			idx = len(buckets) - 1
			byDate[date] = idx
		}
		buckets[idx].add(hour, annotated)

		if day == PostseasonBoundaryDay {
			cursor = date.AddDate(0, 0, 1).Add(PostseasonStartHour * time.Hour)
		} else {
			cursor = cursor.Add(time.Hour)
		}
		start = end
	}

	return buckets
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// VisibleCount reports how many games of the buckets may be shown.
func VisibleCount(buckets []DayBucket) int {
	n := 0
	for _, b := range buckets {
		for _, h := range b.Hours {
			for _, g := range h.Games {
				if g.VisibleOnSite {
					n++
				}
			}
		}
	}
	return n
}
