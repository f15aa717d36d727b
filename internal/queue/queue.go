package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// refreshWindow bounds how often one account can be queued for refresh.
const refreshWindow = 10 * time.Minute

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EnqueueTokenRefresh queues a refresh for one account. A refresh already
// queued in the current window is not duplicated.
func EnqueueTokenRefresh(ctx context.Context, client Enqueuer, payload TokenRefreshPayload, now time.Time) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeTokenRefresh, taskPayload)
	taskID := fmt.Sprintf("%s:%d:%d", TaskTypeTokenRefresh, payload.AccountID, now.Truncate(refreshWindow).Unix())

	_, err = client.EnqueueContext(ctx, task,
		asynq.TaskID(taskID),
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		slog.Info("token refresh already queued", "account_id", payload.AccountID)
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("token refresh queued", "account_id", payload.AccountID)
	return nil
}
