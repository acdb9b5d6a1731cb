package database

import (
	"context"
	"database/sql"

	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/internal/database/repository"
)

// HistoryStore adapts SelectionRepo to the core.HistoryStore contract
// the TUI shell records commits through.
type HistoryStore struct {
	repo *repository.SelectionRepo
}

func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{repo: repository.NewSelectionRepo(db)}
}

func (h *HistoryStore) Record(widget, value string) error {
	return h.repo.Insert(context.Background(), repository.Selection{
		ID:        repository.NewSelectionID(),
		Widget:    widget,
		Value:     value,
		CreatedAt: Now(),
	})
}

func (h *HistoryStore) Recent(limit int) ([]core.HistoryEntry, error) {
	rows, err := h.repo.Recent(context.Background(), limit)
	if err != nil {
		return nil, err
	}
	out := make([]core.HistoryEntry, 0, len(rows))
	for _, s := range rows {
		out = append(out, core.HistoryEntry{
			ID:     s.ID,
			Widget: s.Widget,
			Value:  s.Value,
			At:     s.CreatedAt,
		})
	}
	return out, nil
}
