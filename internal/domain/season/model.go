package season

import (
	"fmt"
	"time"
)

// Season is one numbered campaign of the league. StartsAt is the real-world instant of day 0.
type Season struct {
	ID       string
	Number   int
	Name     string
	StartsAt time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.StartsAt.IsZero() {
		return fmt.Errorf("season start is required")
	}

	return nil
}
