package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// SelectionRepo persists committed selections.
type SelectionRepo struct {
	db *sql.DB
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo { return &SelectionRepo{db: db} }

func (r *SelectionRepo) Insert(ctx context.Context, s Selection) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO selections(id, widget, value, created_at) VALUES (?, ?, ?, ?);
	`, s.ID, s.Widget, s.Value, s.CreatedAt)
	return err
}

func (r *SelectionRepo) Recent(ctx context.Context, limit int) ([]Selection, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, widget, value, created_at FROM selections
	ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.ID, &s.Widget, &s.Value, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountByWidget reports how many selections each widget has recorded.
func (r *SelectionRepo) CountByWidget(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT widget, COUNT(*) FROM selections GROUP BY widget`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var widget string
		var n int
		if err := rows.Scan(&widget, &n); err != nil {
			return nil, err
		}
		out[widget] = n
	}
	return out, rows.Err()
}

// PruneBefore deletes selections older than cutoff and returns how many
// rows went away.
func (r *SelectionRepo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM selections WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// NewSelectionID mints a random selection id.
func NewSelectionID() string {
	return uuid.NewString()
}
