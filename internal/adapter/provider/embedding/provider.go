// Package embedding calls an OpenAI-compatible /embeddings endpoint.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	defaultTimeout = 15 * time.Second
	retryDelay     = 500 * time.Millisecond
)

// ErrEmptyInput is returned for blank text; no request is sent.
var ErrEmptyInput = errors.New("embedding: empty input")

// Config configures the provider.
type Config struct {
	BaseURL       string
	APIKey        string
	Model         string
	Timeout       time.Duration
	MaxInputChars int
}

// Provider computes text embeddings over HTTP.
type Provider struct {
	endpoint   string
	apiKey     string
	model      string
	maxInput   int
	httpClient *http.Client
	log        *slog.Logger
	retryDelay time.Duration
}

// NewProvider creates a Provider. BaseURL is the API root, e.g.
// "https://api.openai.com/v1".
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/embeddings",
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxInput:   cfg.MaxInputChars,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "embedding"),
		retryDelay: retryDelay,
	}
}

// Model returns the configured model name.
func (p *Provider) Model() string { return p.model }

// Embed returns the embedding vector for text. Input longer than
// MaxInputChars runes is cut before sending.
func (p *Provider) Embed(ctx context.Context, text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	if p.maxInput > 0 && utf8.RuneCountInString(text) > p.maxInput {
		text = string([]rune(text)[:p.maxInput])
	}

	payload, err := json.Marshal(apiRequest{Model: p.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("embedding: encode request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, payload)
	if err != nil {
		p.log.ErrorContext(ctx, "embedding request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("embedding: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("embedding: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding: unexpected status %d: %s", resp.StatusCode, apiErrorMessage(body))
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("embedding: decode json: %w", err)
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding: response has no vector")
	}

	p.log.DebugContext(ctx, "embedding response",
		slog.String("model", out.Model),
		slog.Int("dimensions", len(out.Data[0].Embedding)),
		slog.Int("prompt_tokens", out.Usage.PromptTokens),
	)

	return out.Data[0].Embedding, nil
}

func (p *Provider) newRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}
	return req, nil
}

// doWithRetry sends the request with a single retry on 429, 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := p.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && (resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests))
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "embedding retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	req, err = p.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}
