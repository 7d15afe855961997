package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/kurirmed/dispatch/internal/pkg/circuitbreaker"
	"github.com/kurirmed/dispatch/internal/pkg/middleware"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

// HTTPSubmitter delivers queued actions to the coordination server's sync
// endpoint. A circuit breaker fails submissions fast while the server is
// down instead of burning the flush retry budget on every action.
type HTTPSubmitter struct {
	baseURL string
	apiKey  string
	client  *nethttp.Client
	breaker *circuitbreaker.Breaker
}

// NewHTTPSubmitter creates a submitter against the given server base URL
func NewHTTPSubmitter(cfg models.SyncConfig, baseURL, apiKey string) *HTTPSubmitter {
	timeout := 10 * time.Second
	if cfg.SubmitTimeout > 0 {
		timeout = time.Duration(cfg.SubmitTimeout) * time.Second
	}

	breakerCfg := circuitbreaker.DefaultConfig("sync-submitter")
	// Rejections are server verdicts, not server trouble; only transient
	// failures may open the circuit.
	breakerCfg.IsFailure = func(err error) bool {
		return err != nil && IsTransient(err)
	}

	return &HTTPSubmitter{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &nethttp.Client{Timeout: timeout},
		breaker: circuitbreaker.New(breakerCfg),
	}
}

// Submit posts one action through the circuit breaker and decodes the
// server's verdict
func (s *HTTPSubmitter) Submit(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	var result *models.ActionResult
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		var submitErr error
		result, submitErr = s.submit(ctx, action)
		return submitErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *HTTPSubmitter) submit(ctx context.Context, action models.QueuedAction) (*models.ActionResult, error) {
	body, err := json.Marshal(action)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action: %w", err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost,
		s.baseURL+"/v1/sync/actions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submission request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &SubmitError{
			StatusCode: resp.StatusCode,
			Message:    string(msg),
		}
	}

	var envelope struct {
		Success bool                `json:"success"`
		Data    models.ActionResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode submission response: %w", err)
	}
	return &envelope.Data, nil
}
