// Package embedding provides the embedding backend client and the process-wide
// vector cache used by the query matching engine.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/shopgraph/pipeline/internal/domain"
)

// Client talks to an Ollama-compatible embedding endpoint
type Client struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	dimensions  int
	rateLimiter *rate.Limiter
	debug       bool
}

// ClientConfig holds construction parameters for the embedding client
type ClientConfig struct {
	BaseURL    string
	Model      string
	Dimensions int           // expected vector dimensionality, 0 disables the check
	Timeout    time.Duration // per-request HTTP timeout
	RateLimit  float64       // requests per second
	Burst      int
}

// NewClient creates a new embedding backend client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "all-minilm"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		dimensions:  cfg.Dimensions,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		debug:       false,
	}
}

// SetDebug enables or disables request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// embedRequest is the backend API request format
type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// embedResponse is the backend API response format
type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed maps text to a dense vector by calling the embedding backend.
// Any transport, status, or decode failure surfaces as ErrModelUnavailable;
// callers abort the whole match run since similarity is a primary signal.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embedRequest{Model: c.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		vector, err := c.doEmbed(ctx, body)
		if err != nil {
			if c.debug {
				log.Printf("[EMBED] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		if c.dimensions > 0 && len(vector) != c.dimensions {
			return nil, fmt.Errorf("%w: expected %d dimensions, got %d",
				domain.ErrModelUnavailable, c.dimensions, len(vector))
		}

		if c.debug {
			log.Printf("[EMBED] got %d-dimensional vector for %d bytes of text", len(vector), len(text))
		}
		return vector, nil
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, lastErr)
}

// doEmbed executes a single embedding request
func (c *Client) doEmbed(ctx context.Context, body []byte) ([]float32, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ShopGraph/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling embedding backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("embedding backend returned status %d", resp.StatusCode)
	}

	var embedResp embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return embedResp.Embedding, nil
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}
