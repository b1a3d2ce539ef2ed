// Package api is the HTTP client for the Pharmacy Learning Toolkit backend.
// Each method maps to one fixed endpoint under a configurable base URL and
// extracts the single response field a panel renders.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Cyclone1070/pharmtui/internal/metrics"
	"github.com/google/uuid"
	"github.com/juju/ratelimit"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a non-2xx body is kept in a StatusError.
const maxErrorBody = 4096

// Client calls the backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	bucket     *ratelimit.Bucket
	metrics    *metrics.Collectors
	logger     *zap.Logger
	requestID  func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit allows at most rps requests per second. Zero disables limiting.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.bucket = ratelimit.NewBucketWithRate(float64(rps), int64(rps))
		}
	}
}

// WithMetrics records every request on m.
func WithMetrics(m *metrics.Collectors) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRequestIDFunc overrides the X-Request-ID generator.
func WithRequestIDFunc(f func() string) Option {
	return func(c *Client) { c.requestID = f }
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		requestID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchDrugs runs a free-text drug search. An empty query is sent as-is.
func (c *Client) SearchDrugs(ctx context.Context, query string) ([]DrugRecord, error) {
	q := url.Values{}
	q.Set("q", query)

	items := []DrugRecord{}
	err := c.do(ctx, EndpointSearch, q, nil, func(env envelope) error {
		return env.field("items", &items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SimulateInteractions asks for the pairwise interactions among drugs.
func (c *Client) SimulateInteractions(ctx context.Context, drugs []string) ([]InteractionPair, error) {
	if drugs == nil {
		drugs = []string{}
	}
	body := struct {
		Drugs []string `json:"drugs"`
	}{Drugs: drugs}

	pairs := []InteractionPair{}
	err := c.do(ctx, EndpointSimulate, nil, body, func(env envelope) error {
		return env.field("pairs", &pairs)
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// Chat sends a question to the pharmacology chatbot.
func (c *Client) Chat(ctx context.Context, message string) (ChatReply, error) {
	body := struct {
		Message string `json:"message"`
	}{Message: message}

	var reply ChatReply
	err := c.do(ctx, EndpointChat, nil, body, func(env envelope) error {
		return env.field("reply", &reply.Reply)
	})
	if err != nil {
		return ChatReply{}, err
	}
	return reply, nil
}

// GenerateQuiz requests count practice questions on topic.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, count int) ([]QuizItem, error) {
	body := struct {
		Topic string `json:"topic"`
		Count int    `json:"count"`
	}{Topic: topic, Count: count}

	items := []QuizItem{}
	err := c.do(ctx, EndpointQuiz, nil, body, func(env envelope) error {
		return env.field("items", &items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SummarizeResearch asks for a literature summary on query.
func (c *Client) SummarizeResearch(ctx context.Context, query string) (ResearchSummary, error) {
	body := struct {
		Query string `json:"query"`
	}{Query: query}

	var summary ResearchSummary
	err := c.do(ctx, EndpointResearch, nil, body, func(env envelope) error {
		return env.field("summary", &summary.Summary)
	})
	if err != nil {
		return ResearchSummary{}, err
	}
	return summary, nil
}

// Seed loads the backend's demo data.
func (c *Client) Seed(ctx context.Context) (SeedStatus, error) {
	var status SeedStatus
	err := c.do(ctx, EndpointSeed, nil, nil, func(env envelope) error {
		status = seedStatusFrom(env["seeded"])
		return nil
	})
	if err != nil {
		return SeedStatus{}, err
	}
	return status, nil
}

// do performs one request and hands the decoded top-level object to extract.
// body is JSON-encoded when non-nil.
func (c *Client) do(ctx context.Context, ep Endpoint, query url.Values, body any, extract func(envelope) error) (err error) {
	requestID := c.requestID()
	outcome := metrics.OutcomeOK
	if c.metrics != nil {
		done := c.metrics.Start(string(ep))
		defer func() { done(outcome) }()
	}
	start := time.Now()
	defer func() {
		if err != nil {
			return
		}
		c.logger.Debug("backend request completed",
			zap.String("endpoint", string(ep)),
			zap.String("request_id", requestID),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.wait(ctx); err != nil {
		outcome = metrics.OutcomeTransport
		return c.wrap(ep, requestID, fmt.Errorf("%w: %w", ErrTransport, err))
	}

	target := c.baseURL + ep.Path()
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			outcome = metrics.OutcomeError
			return c.wrap(ep, requestID, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method(), target, reader)
	if err != nil {
		outcome = metrics.OutcomeError
		return c.wrap(ep, requestID, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return c.wrap(ep, requestID, fmt.Errorf("%w: %w", ErrTransport, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = metrics.OutcomeStatus
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.wrap(ep, requestID, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(snippet)),
		})
	}

	env, err := readEnvelope(resp.Body)
	if err != nil {
		outcome = metrics.OutcomeDecode
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The body read was cut short by cancellation.
			outcome = metrics.OutcomeTransport
			err = fmt.Errorf("%w: %w", ErrTransport, ctxErr)
		}
		return c.wrap(ep, requestID, err)
	}
	if err := extract(env); err != nil {
		outcome = metrics.OutcomeDecode
		return c.wrap(ep, requestID, err)
	}
	return nil
}

// wait blocks until the rate limiter grants a token or ctx is done.
func (c *Client) wait(ctx context.Context) error {
	if c.bucket == nil {
		return ctx.Err()
	}
	d := c.bucket.Take(1)
	if d == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) wrap(ep Endpoint, requestID string, err error) error {
	return &RequestError{Endpoint: ep, RequestID: requestID, Err: err}
}
