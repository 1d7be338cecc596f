package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// HTTPSource downloads the weather table from a URL.
//
// Transient failures (network errors, 429 and 5xx responses) are retried
// with exponential backoff. The source is safe for concurrent use.
type HTTPSource struct {
	session *http.Client
	url     string
	token   string

	maxAttempts int
	backoff     time.Duration
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// NewHTTPSource builds a source for url. token, when not empty, is sent as a
// bearer token.
func NewHTTPSource(url string, token string) (*HTTPSource, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("weather http source: url is empty")
	}

	return &HTTPSource{
		session:     &http.Client{Timeout: 30 * time.Second},
		url:         url,
		token:       token,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}, nil
}

func (h *HTTPSource) OpenWeather(ctx context.Context) (io.ReadCloser, error) {
	resp, err := h.doWithRetry(ctx, func() (*http.Request, error) {
		return h.newRequest(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch weather %q: %w", h.url, err)
	}
	return resp.Body, nil
}

func (h *HTTPSource) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "text/csv")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	return req, nil
}

func (h *HTTPSource) do(req *http.Request) (*http.Response, error) {
	resp, err := h.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx responses)
// using exponential backoff while respecting context cancellation.
func (h *HTTPSource) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := h.backoff

	var lastErr error

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := h.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == h.maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
