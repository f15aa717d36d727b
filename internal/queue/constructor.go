package queue

import (
	"github.com/maheshrc27/creatorflow/internal/service"
)

type Queue struct {
	yt service.YoutubeService
}

func NewQueue(yt service.YoutubeService) *Queue {
	return &Queue{
		yt: yt,
	}
}

const TaskTypeTokenRefresh = "token:refresh"

type TokenRefreshPayload struct {
	AccountID int64 `json:"account_id"`
}
