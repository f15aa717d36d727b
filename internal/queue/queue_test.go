package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/creatorflow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, f.err
}

type fakeYoutube struct {
	service.YoutubeService
	refreshed []int64
	err       error
}

func (f *fakeYoutube) RefreshToken(_ context.Context, accountID int64) error {
	f.refreshed = append(f.refreshed, accountID)
	return f.err
}

func TestEnqueueTokenRefresh(t *testing.T) {
	enq := &fakeEnqueuer{}

	require.NoError(t, EnqueueTokenRefresh(context.Background(), enq, TokenRefreshPayload{AccountID: 9}, time.Now()))

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TaskTypeTokenRefresh, enq.tasks[0].Type())

	var payload TokenRefreshPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	assert.Equal(t, int64(9), payload.AccountID)
}

func TestEnqueueTokenRefreshDuplicate(t *testing.T) {
	enq := &fakeEnqueuer{err: asynq.ErrTaskIDConflict}
	assert.NoError(t, EnqueueTokenRefresh(context.Background(), enq, TokenRefreshPayload{AccountID: 9}, time.Now()))

	enq = &fakeEnqueuer{err: errors.New("redis down")}
	assert.Error(t, EnqueueTokenRefresh(context.Background(), enq, TokenRefreshPayload{AccountID: 9}, time.Now()))
}

func TestHandleTokenRefreshTask(t *testing.T) {
	yt := &fakeYoutube{}
	q := NewQueue(yt)
	ctx := context.Background()

	require.NoError(t, q.HandleTokenRefreshTask(ctx, asynq.NewTask(TaskTypeTokenRefresh, []byte(`{"account_id": 4}`))))
	assert.Equal(t, []int64{4}, yt.refreshed)

	err := q.HandleTokenRefreshTask(ctx, asynq.NewTask(TaskTypeTokenRefresh, []byte(`nope`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	yt.err = service.ErrAccountNotFound
	err = q.HandleTokenRefreshTask(ctx, asynq.NewTask(TaskTypeTokenRefresh, []byte(`{"account_id": 5}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	yt.err = errors.New("google unavailable")
	err = q.HandleTokenRefreshTask(ctx, asynq.NewTask(TaskTypeTokenRefresh, []byte(`{"account_id": 6}`)))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
