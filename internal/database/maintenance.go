package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/selectkit/internal/database/repository"
)

// historyRetention bounds how far back the selection history grows.
const historyRetention = 90 * 24 * time.Hour

// PruneHistory drops selection records past the retention window. It is
// idempotent and safe to run on every startup.
func PruneHistory(ctx context.Context, db *sql.DB) (int64, error) {
	repo := repository.NewSelectionRepo(db)
	return repo.PruneBefore(ctx, Now().Add(-historyRetention))
}
