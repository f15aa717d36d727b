package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/creatorflow/internal/generator"
	"github.com/maheshrc27/creatorflow/internal/queue"
	"github.com/maheshrc27/creatorflow/internal/repository"
)

// RefreshAhead is how long before expiry a token is renewed.
const RefreshAhead = 30 * time.Minute

type TokenRefreshJob struct {
	sr  repository.SocialAccountRepository
	enq queue.Enqueuer
	now func() time.Time
}

func NewTokenRefreshJob(sr repository.SocialAccountRepository, enq queue.Enqueuer) *TokenRefreshJob {
	return &TokenRefreshJob{
		sr:  sr,
		enq: enq,
		now: time.Now,
	}
}

// RefreshTokens is the cron entry point.
func (c *TokenRefreshJob) RefreshTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := c.Run(ctx); err != nil {
		slog.Info("token refresh run failed", "error", err)
	}
}

// Run queues a refresh for every YouTube account expiring soon and returns
// how many were queued.
func (c *TokenRefreshJob) Run(ctx context.Context) (int, error) {
	now := c.now()

	accounts, err := c.sr.ListExpiring(ctx, string(generator.PlatformYoutube), now.Add(RefreshAhead))
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, acc := range accounts {
		err := queue.EnqueueTokenRefresh(ctx, c.enq, queue.TokenRefreshPayload{AccountID: acc.ID}, now)
		if err != nil {
			slog.Info("unable to queue token refresh", "account_id", acc.ID, "error", err)
			continue
		}
		queued++
	}
	return queued, nil
}
