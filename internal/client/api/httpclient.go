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

	"github.com/google/uuid"
	"github.com/rosdobro/dobrodela-cli/internal/client/cookies"
	"github.com/rosdobro/dobrodela-cli/internal/common"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
	"golang.org/x/sync/singleflight"
)

const (
	loginEndpoint = "/auth/login"
	meEndpoint    = "/users/me/"
)

// HTTPClient implements Client over net/http. It reads the bearer token from
// the cookie store on every request and performs the one-shot
// refresh-and-retry on 401 in a single place, so individual endpoint methods
// stay free of retry logic.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	cookies *cookies.Store
	log     logging.Logger

	// Concurrent 401s share one in-flight refresh instead of issuing
	// their own.
	refresh singleflight.Group
}

func NewHTTPClient(baseURL string, timeout time.Duration, store *cookies.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cookies: store,
		log:     log,
	}
}

// request performs a call and applies the refresh-on-401 policy:
//
//   - a 401 on any endpoint except login triggers one session refresh;
//   - on refresh success the original request is retried exactly once;
//   - a refresh failure, or a 401 on the retry, yields the session-expired
//     error; no second refresh is ever attempted.
//
// A 2xx body is decoded as JSON into out (when out is non-nil); malformed
// JSON is an error, not a silent default. Any other status becomes an
// *APIError.
func (c *HTTPClient) request(ctx context.Context, method, endpoint string, body []byte, contentType string, out any) error {
	data, status, statusText, err := c.send(ctx, method, endpoint, body, contentType)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !strings.Contains(endpoint, loginEndpoint) {
		if err := c.refreshSession(ctx); err != nil {
			c.log.Debug(ctx, "session refresh failed", "endpoint", endpoint, "error", err)
			return sessionExpiredError()
		}

		data, status, statusText, err = c.send(ctx, method, endpoint, body, contentType)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			return sessionExpiredError()
		}
	}

	if status < 200 || status > 299 {
		return decodeError(status, statusText, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

// send issues a single HTTP request and reads the whole response body.
// Transport failures wrap common.ErrUnavailable.
func (c *HTTPClient) send(ctx context.Context, method, endpoint string, body []byte, contentType string) ([]byte, int, string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, 0, "", fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.cookies.GetAccessToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	return data, resp.StatusCode, resp.Status, nil
}

// refreshSession verifies the current credential against the "who am I"
// endpoint. Concurrent callers are coalesced into one in-flight check.
func (c *HTTPClient) refreshSession(ctx context.Context) error {
	_, err, _ := c.refresh.Do("session-refresh", func() (any, error) {
		data, status, statusText, err := c.send(ctx, http.MethodGet, meEndpoint, nil, "")
		if err != nil {
			return nil, err
		}
		if status < 200 || status > 299 {
			return nil, decodeError(status, statusText, data)
		}
		return nil, nil
	})
	return err
}

// decodeError converts a non-2xx response into an *APIError. The backend
// reports failures as {"detail": "..."}; when no detail is present the raw
// status text serves as the message.
func decodeError(status int, statusText string, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &APIError{
			Message: TranslateDetail(payload.Detail),
			Status:  status,
			Detail:  payload.Detail,
		}
	}

	message := statusText
	if message == "" {
		message = msgRequestFailed
	}
	return &APIError{Message: message, Status: status}
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, "", out)
}

func (c *HTTPClient) postJSON(ctx context.Context, endpoint string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", endpoint, err)
	}
	return c.request(ctx, http.MethodPost, endpoint, body, "application/json", out)
}

func (c *HTTPClient) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, []byte(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (c *HTTPClient) post(ctx context.Context, endpoint string) error {
	return c.request(ctx, http.MethodPost, endpoint, nil, "", nil)
}

func (c *HTTPClient) delete(ctx context.Context, endpoint string) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, "", nil)
}
