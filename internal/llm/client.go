package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// NudgeWriter turns a session description into exactly Count nudge lines.
type NudgeWriter interface {
	WriteNudges(ctx context.Context, req NudgeRequest) ([]string, error)
	// Available reports whether the model server answers at all.
	Available(ctx context.Context) bool
}

// Client writes nudges with a model served over the Ollama HTTP API.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 2 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

// Wire format of POST /api/generate with streaming off.
type generateBody struct {
	Model   string          `json:"model"`
	System  string          `json:"system"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateReply struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// WriteNudges asks the model for req.Count nudges. A reply that cannot be
// parsed into that many usable lines counts as a failed attempt and is
// retried like a transport failure.
func (c *Client) WriteNudges(ctx context.Context, req NudgeRequest) ([]string, error) {
	start := time.Now()
	event := WriteEvent{Model: c.cfg.Model, Focus: req.Focus, Requested: req.Count}

	body := generateBody{
		Model:  c.cfg.Model,
		System: nudgeSystemPrompt,
		Prompt: req.prompt(),
		Options: generateOptions{
			Temperature: c.cfg.Temperature,
			NumPredict:  c.cfg.MaxTokens,
		},
	}

	var (
		nudges  []string
		lastErr error
	)
	for range 1 + c.cfg.MaxRetries {
		// A per-attempt timeout allows another try; the caller's does not.
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}
		event.Attempts++
		nudges, lastErr = c.attempt(ctx, body, req.Count)
		if lastErr == nil {
			break
		}
	}

	var err error
	if lastErr != nil {
		nudges = nil
		err = classifyError(lastErr)
	}
	event.Written = len(nudges)
	event.Latency = time.Since(start)
	event.ErrorCode = errorCode(err)
	c.observer.NudgesWritten(ctx, event)
	return nudges, err
}

func (c *Client) attempt(ctx context.Context, body generateBody, count int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
	defer cancel()

	reply, err := c.post(ctx, body)
	if err != nil {
		return nil, err
	}
	return parseNudges(reply.Response, count, c.cfg.MaxNudgeRunes)
}

func (c *Client) post(ctx context.Context, body generateBody) (*generateReply, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model server returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var reply generateReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}
	return &reply, nil
}

func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func classifyError(err error) error {
	var netErr *net.OpError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, ErrInvalidOutput):
		return err
	case errors.As(err, &netErr):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %w", ErrRetryExhausted, err)
	}
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
