package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	repository.SocialAccountRepository
	accounts []*models.SocialAccount
	platform string
	before   time.Time
	err      error
}

func (f *fakeAccounts) ListExpiring(_ context.Context, platform string, before time.Time) ([]*models.SocialAccount, error) {
	f.platform, f.before = platform, before
	return f.accounts, f.err
}

type fakeEnqueuer struct {
	tasks  []*asynq.Task
	failOn int
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	if len(f.tasks) == f.failOn {
		return nil, errors.New("redis down")
	}
	return &asynq.TaskInfo{}, nil
}

func TestRunQueuesExpiringYoutubeAccounts(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeAccounts{accounts: []*models.SocialAccount{{ID: 1}, {ID: 2}, {ID: 3}}}
	enq := &fakeEnqueuer{failOn: 2}

	job := NewTokenRefreshJob(repo, enq)
	job.now = func() time.Time { return now }

	queued, err := job.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, queued)
	assert.Len(t, enq.tasks, 3)
	assert.Equal(t, "youtube", repo.platform)
	assert.Equal(t, now.Add(RefreshAhead), repo.before)
}

func TestRunListError(t *testing.T) {
	job := NewTokenRefreshJob(&fakeAccounts{err: errors.New("db down")}, &fakeEnqueuer{})

	_, err := job.Run(context.Background())
	assert.Error(t, err)
}
