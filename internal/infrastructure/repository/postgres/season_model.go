package postgres

import "time"

type seasonTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Number    int        `db:"number"`
	Name      string     `db:"name"`
	StartsAt  time.Time  `db:"starts_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type seasonInsertModel struct {
	PublicID string    `db:"public_id"`
	Number   int       `db:"number"`
	Name     string    `db:"name"`
	StartsAt time.Time `db:"starts_at"`
}
