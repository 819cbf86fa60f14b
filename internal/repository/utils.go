package repository

import (
	"context"
	"strings"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/logger"
)

// SafeRollback rolls back a transaction, logging real failures. Rolling back
// an already committed transaction is the normal deferred-cleanup path and
// stays silent.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || strings.Contains(err.Error(), domain.ErrMsgTxClosed) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
