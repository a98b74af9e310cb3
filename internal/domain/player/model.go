package player

import "fmt"

// Player is a league player; TeamID is the current club and may be empty for free agents.
type Player struct {
	ID       string
	Name     string
	TeamID   string
	Position string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
