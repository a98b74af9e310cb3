package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/season"
	seasonmock "github.com/riskibarqy/league-reference/internal/mocks/domain/season"
	"github.com/stretchr/testify/mock"
)

func TestSeasonService_Get_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	service := NewSeasonService(seasonRepo)

	expected := season.Season{ID: "s12", Number: 12, StartsAt: time.Date(2021, 3, 1, 16, 0, 0, 0, time.UTC)}
	seasonRepo.
		On("GetByID", mock.Anything, "s12").
		Return(expected, true, nil).
		Once()

	got, err := service.Get(ctx, " s12 ")
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if got.Number != 12 {
		t.Fatalf("unexpected season: %+v", got)
	}
}

func TestSeasonService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	service := NewSeasonService(seasonRepo)

	seasonRepo.
		On("GetByID", mock.Anything, "missing").
		Return(season.Season{}, false, nil).
		Once()

	_, err := service.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeasonService_Get_BlankID(t *testing.T) {
	t.Parallel()

	service := NewSeasonService(seasonmock.NewRepository(t))
	if _, err := service.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_List_PropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	seasonRepo := seasonmock.NewRepository(t)
	service := NewSeasonService(seasonRepo)
	boom := errors.New("db down")

	seasonRepo.On("List", mock.Anything).Return(nil, boom).Once()

	if _, err := service.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
