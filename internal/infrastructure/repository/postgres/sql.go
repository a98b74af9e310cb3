package postgres

import (
	"database/sql"
	"errors"
	"strings"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// optionalString maps blank values to SQL NULL.
func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
