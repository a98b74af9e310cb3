package team

import "fmt"

// Team is a club of the league. Teams outlive seasons; divisions do not.
type Team struct {
	ID           string
	Name         string
	Nickname     string
	Location     string
	Abbreviation string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Division groups teams for one season.
type Division struct {
	ID       string
	SeasonID string
	Name     string
	TeamIDs  []string
}

func (d Division) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("division id is required")
	}
	if d.SeasonID == "" {
		return fmt.Errorf("division season id is required")
	}

	return nil
}
