package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/creatorflow/internal/service"
)

func (j *Queue) HandleTokenRefreshTask(ctx context.Context, task *asynq.Task) error {
	var payload TokenRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil || payload.AccountID <= 0 {
		return fmt.Errorf("bad token refresh payload %q: %w", task.Payload(), asynq.SkipRetry)
	}

	err := j.yt.RefreshToken(ctx, payload.AccountID)
	if errors.Is(err, service.ErrAccountNotFound) {
		return fmt.Errorf("account %d: %w", payload.AccountID, asynq.SkipRetry)
	}
	if err != nil {
		slog.Info("unable to refresh youtube token", "account_id", payload.AccountID, "error", err)
		return err
	}
	return nil
}
