package repository

import "time"

// Selection is one committed selection as stored.
type Selection struct {
	ID        string
	Widget    string
	Value     string
	CreatedAt time.Time
}
