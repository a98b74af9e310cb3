package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		items:  make(map[string]player.Player, len(players)),
		orders: make([]string, 0, len(players)),
	}
	r.upsertLocked(players)
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upsertLocked(players)
	return nil
}

func (r *PlayerRepository) upsertLocked(players []player.Player) {
	for _, p := range players {
		if _, exists := r.items[p.ID]; !exists {
			r.orders = append(r.orders, p.ID)
		}
		r.items[p.ID] = p
	}
}
