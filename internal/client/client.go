// Package client provides a small typed HTTP client for the reporting API.
//
// It covers the surface the interview flow needs: scenario lookups, interview
// session calls, and the final report submission. Responses are decoded from
// the uniform {success, timestamp, data} envelope; failures carry the server's
// stable error code via *APIError.
//
// The client is deliberately thin: no retries beyond what the caller chooses
// to do (report creation is safe to retry thanks to the Idempotency-Key
// header), no connection management beyond the injected *http.Client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anawat34115/police-care-backend/internal/domain"
	"github.com/anawat34115/police-care-backend/internal/services"
)

// headerIdempotencyKey mirrors the server's idempotency header.
const headerIdempotencyKey = "Idempotency-Key"

// APIError is a decoded error envelope from the server, annotated with the
// HTTP status it arrived with.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // stable machine-readable code (e.g. "not_found")
	Message string // human-readable message
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d code=%s message=%s", e.Status, e.Code, e.Message)
}

// envelope mirrors the server's uniform response wrapper. Data stays raw so
// each call site can decode into its own type.
type envelope struct {
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Client talks to one reporting API deployment.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New constructs a Client for the API rooted at baseURL (including the API
// base path, e.g. "http://localhost:8080/api"). A nil httpc falls back to a
// client with a 15s timeout.
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// ListScenarios returns all active incident scenarios.
func (c *Client) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	var out []domain.Scenario
	if err := c.do(ctx, http.MethodGet, "/scenarios", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetScenario returns one scenario with its ordered questions.
func (c *Client) GetScenario(ctx context.Context, key string) (*domain.Scenario, error) {
	var out domain.Scenario
	if err := c.do(ctx, http.MethodGet, "/scenarios/"+key, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartInterview allocates a correlation session id for the given scenario.
func (c *Client) StartInterview(ctx context.Context, scenarioType string) (*services.InterviewSession, error) {
	body := map[string]string{"scenario_type": scenarioType}
	var out services.InterviewSession
	if err := c.do(ctx, http.MethodPost, "/interview/start", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendAnswer reports one answer telemetry record. Callers treat this as
// best-effort: the interview flow must not block on the result.
func (c *Client) SendAnswer(ctx context.Context, in services.InterviewAnswerInput) (*services.InterviewAnswerEcho, error) {
	var out services.InterviewAnswerEcho
	if err := c.do(ctx, http.MethodPut, "/interview/answer", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReport submits the final report. idempotencyKey, when non-empty, is
// sent as the Idempotency-Key header so a retried submission returns the
// originally created report instead of a duplicate.
func (c *Client) CreateReport(ctx context.Context, in services.CreateReportInput, idempotencyKey string) (*domain.Report, error) {
	var out domain.Report
	if err := c.do(ctx, http.MethodPost, "/reports", idempotencyKey, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request/response round trip: encodes body (when non-nil),
// sends, decodes the envelope, and unmarshals data into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path, idemKey string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if idemKey != "" {
		req.Header.Set(headerIdempotencyKey, idemKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
