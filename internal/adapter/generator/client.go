// Package generator calls the external itinerary generator service.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tripweave/itinerary-search/internal/domain"
	"github.com/tripweave/itinerary-search/internal/infrastructure/logger"
	"github.com/tripweave/itinerary-search/internal/infrastructure/retry"
)

// DefaultTimeout bounds a single generator attempt.
const DefaultTimeout = 20 * time.Second

// maxErrorBody limits how much of an error response is kept for messages.
const maxErrorBody = 512

// Config configures the generator client.
type Config struct {
	// URL is the generator endpoint that accepts the trip brief.
	URL string

	// Timeout bounds each attempt. Zero uses DefaultTimeout.
	Timeout time.Duration

	// Retry controls retries of transient failures.
	Retry retry.Config
}

// Client is an ItineraryGenerator backed by an HTTP JSON service.
type Client struct {
	url        string
	httpClient *http.Client
	retry      retry.Config
}

// StatusError is returned for non-2xx generator responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("generator returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generator returned status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a generator client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.GeneratorConfig()
	}

	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		retry:      retryCfg,
	}
}

// generateResponse is the generator's reply: an itinerary document with
// accommodation and cancellation extras next to the itinerary fields.
type generateResponse struct {
	domain.Itinerary
	HotelStays          []domain.HotelStay          `json:"hotelStays"`
	CancellationPenalty *domain.CancellationPenalty `json:"cancellationPenalty"`
}

// Generate sends the brief and decodes the draft. 429 and 5xx responses
// and transport errors are retried; other failures are returned at once.
func (c *Client) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GeneratedItinerary, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling generate request: %w", err)
	}

	log := logger.FromContext(ctx)
	cfg := c.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Str("destination", req.Destination).
			Msg("retrying itinerary generator")
	})

	return retry.DoWithResult(ctx, func() (*domain.GeneratedItinerary, error) {
		return c.do(ctx, body)
	}, cfg)
}

func (c *Client) do(ctx context.Context, body []byte) (*domain.GeneratedItinerary, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("building generator request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, retry.NewPermanent(err)
		}
		return nil, fmt.Errorf("calling generator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
		if retry.RetryableStatus(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, retry.NewPermanent(statusErr)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decoding generator response: %w", err))
	}

	return &domain.GeneratedItinerary{
		Itinerary:           decoded.Itinerary,
		HotelStays:          decoded.HotelStays,
		CancellationPenalty: decoded.CancellationPenalty,
	}, nil
}

var _ domain.ItineraryGenerator = (*Client)(nil)
