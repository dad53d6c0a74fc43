package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/core/telegram/netutil"
	"log/slog"
)

const (
	defaultDialTimeout     = 5 * time.Second
	defaultTLSHandshake    = 5 * time.Second
	defaultIdleConnTimeout = 30 * time.Second
	defaultClientTimeout   = 30 * time.Second
	defaultRetryAttempts   = 2
	defaultRetryBackoff    = time.Second

	authHeader = "X-Telegram-Bot-API-Token"
)

// Config holds the backend endpoint settings.
type Config struct {
	BaseURL string
	// Token authenticates the bot against the backend; it is the Telegram
	// bot token sent in the X-Telegram-Bot-API-Token header.
	Token          string
	TimeoutSeconds int
}

// Client talks to the exhibition backend. All methods return the decoded
// response together with the HTTP status where callers need to branch on it;
// transport failures are returned as errors.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a Client with a tuned transport that retries transient network
// failures.
func New(cfg Config) *Client {
	timeout := defaultClientTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: defaultDialTimeout}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     defaultIdleConnTimeout,
		TLSHandshakeTimeout: defaultTLSHandshake,
	}

	return &Client{
		baseURL: trimSlash(cfg.BaseURL),
		token:   cfg.Token,
		http: &http.Client{
			Timeout: timeout,
			Transport: &retryTransport{
				base:       transport,
				maxRetries: defaultRetryAttempts,
				backoff:    defaultRetryBackoff,
			},
		},
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// do performs a request against path and returns the status plus raw body.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set(authHeader, c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error(ctx, "api", "request.fail",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", logger.RoundMS(logger.Took(start))),
			slog.String("err", err.Error()),
		)
		return 0, nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("api: read response: %w", err)
	}

	logger.Debug(ctx, "api", "request.done",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("http_code", resp.StatusCode),
		slog.Duration("duration", logger.RoundMS(logger.Took(start))),
	)
	return resp.StatusCode, data, nil
}

// getJSON issues a GET and decodes a 200 body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) (int, error) {
	status, data, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return status, err
	}
	if status != http.StatusOK {
		return status, fmt.Errorf("api: GET %s: status %d", path, status)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return status, fmt.Errorf("api: decode %s: %w", path, err)
	}
	return status, nil
}

// postJSON issues a POST with a JSON body and returns status plus raw body.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("api: encode %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", body)
}

// retryTransport retries transient network failures, mirroring the Telegram
// client transport. Responses with error status codes are not retried; the
// backend owns those semantics.
type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
	backoff    time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	attempts := t.maxRetries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		currReq := req
		if attempt > 1 {
			currReq = req.Clone(req.Context())
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				currReq.Body = body
			} else if req.Body != nil {
				return nil, lastErr
			}
		}

		resp, err := base.RoundTrip(currReq)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !netutil.ShouldRetry(err) || attempt == attempts {
			break
		}

		delay := t.backoff * time.Duration(attempt)
		timer := time.NewTimer(delay)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}
