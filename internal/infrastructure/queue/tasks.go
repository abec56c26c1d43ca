package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task types
const (
	TypeSiteKeepalive = "site:keepalive"
)

// Queues
const (
	QueueDefault = "default"
)

// KeepalivePayload - URL gốc của site cần ping
type KeepalivePayload struct {
	BaseURL string `json:"base_url"`
}

// NewKeepaliveTask build task ping HEAD <baseURL>/ping
func NewKeepaliveTask(baseURL string) (*asynq.Task, error) {
	payload, err := json.Marshal(KeepalivePayload{BaseURL: baseURL})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSiteKeepalive, payload,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(30*time.Second),
	), nil
}
