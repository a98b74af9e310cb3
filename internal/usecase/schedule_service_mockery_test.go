package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	gamemock "github.com/riskibarqy/league-reference/internal/mocks/domain/game"
	seasonmock "github.com/riskibarqy/league-reference/internal/mocks/domain/season"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_GetSchedule_UsingMockery(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	gameRepo := gamemock.NewRepository(t)
	service := NewScheduleService(seasonRepo, gameRepo)

	start := time.Date(2021, 1, 1, 22, 0, 0, 0, time.UTC)
	seasonRepo.
		On("GetByID", mock.Anything, "s1").
		Return(season.Season{ID: "s1", StartsAt: start}, true, nil).
		Once()
	gameRepo.
		On("ListBySeason", mock.Anything, "s1").
		Return([]game.Game{
			{ID: "g2", Day: 2},
			{ID: "g0", Day: 0, GameStart: true},
			{ID: "g1", Day: 1},
		}, nil).
		Once()

	got, err := service.GetSchedule(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 3, got.TotalGames)
	require.Equal(t, 2, got.VisibleGames)
	require.Len(t, got.Days, 2)

	require.Equal(t, 1, got.Days[0].DayOfMonth)
	require.Len(t, got.Days[0].Hours, 2)
	require.Equal(t, "g0", got.Days[0].Hours[0].Games[0].ID)
	require.Equal(t, 22, got.Days[0].Hours[0].Hour)

	require.Equal(t, 2, got.Days[1].DayOfMonth)
	require.Equal(t, 0, got.Days[1].Hours[0].Hour)
	require.Equal(t, "g2", got.Days[1].Hours[0].Games[0].ID)
}

func TestScheduleService_GetSchedule_SeasonNotFound(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	service := NewScheduleService(seasonRepo, gamemock.NewRepository(t))

	seasonRepo.On("GetByID", mock.Anything, "nope").Return(season.Season{}, false, nil).Once()

	_, err := service.GetSchedule(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
