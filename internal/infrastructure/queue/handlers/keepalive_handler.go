package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hibiken/asynq"

	"songblog-backend/internal/infrastructure/queue"
	"songblog-backend/pkg/logger"
)

// KeepaliveHandler gửi HEAD /ping tới site để instance không bị idle
type KeepaliveHandler struct {
	client *http.Client
}

func NewKeepaliveHandler(client *http.Client) *KeepaliveHandler {
	return &KeepaliveHandler{client: client}
}

func (h *KeepaliveHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p queue.KeepalivePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry) // Sai format payload, skip retry
	}
	if p.BaseURL == "" {
		return fmt.Errorf("empty base url: %w", asynq.SkipRetry)
	}

	target := strings.TrimRight(p.BaseURL, "/") + "/ping"
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %v: %w", err, asynq.SkipRetry)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping %s: %w", target, err) // Lỗi mạng, retry lại
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ping %s: unexpected status %d", target, resp.StatusCode)
	}

	logger.Debug("Keepalive ping OK: " + target)
	return nil
}
