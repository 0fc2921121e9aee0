// Package gateway is the sole path between the client engine and the
// remote service. It attaches the current credential to every outbound
// call, maps response statuses onto the domain error taxonomy, and
// drives credential renewal when the service reports an expired token.
//
// Renewal is coalesced: however many requests fail with 401 at once,
// exactly one renewal call is issued and every waiter observes its
// outcome. A terminal renewal failure clears the session locally and no
// further renewal is attempted until a new login stores a credential.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/wire"
)

// SessionHooks lets the session layer observe the renewal lifecycle so
// it can report the Refreshing state and reset on terminal failure.
type SessionHooks interface {
	RenewalStarted()
	RenewalSucceeded()
	RenewalFailed()
}

// Client is the request gateway.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *CredentialStore
	renew   singleflight.Group
	hooks   SessionHooks
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// New creates a gateway client. The underlying http.Client carries a
// cookie jar so the refresh credential cookie set at login rides along
// on renewal calls, as the remote service expects.
func New(baseURL string, timeout time.Duration, creds *CredentialStore, logger zerolog.Logger, m *metrics.Metrics) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		creds:   creds,
		logger:  logger,
		metrics: m,
	}
}

// SetHooks registers the session observer. Must be called before the
// client is shared across goroutines.
func (c *Client) SetHooks(h SessionHooks) {
	c.hooks = h
}

// Credentials exposes the credential store to the session layer.
func (c *Client) Credentials() *CredentialStore {
	return c.creds
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Send(ctx, http.MethodDelete, path, nil, nil)
}

// Send performs one remote call. On an authorization failure it renews
// the credential (joining any renewal already in flight) and resends the
// request exactly once; a second authorization failure propagates
// unchanged.
func (c *Client) Send(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}

	start := time.Now()
	token := c.creds.Token()

	status, data, err := c.do(ctx, method, path, payload, token)
	if err != nil {
		c.observe(method, 0, start)
		return err
	}

	if status == http.StatusUnauthorized && token != "" {
		retryToken, err := c.renewCredential(ctx, token)
		if err != nil {
			c.observe(method, status, start)
			return err
		}

		c.logger.Debug().Str("method", method).Str("path", path).Msg("resending with renewed credential")
		status, data, err = c.do(ctx, method, path, payload, retryToken)
		if err != nil {
			c.observe(method, 0, start)
			return err
		}
	}

	c.observe(method, status, start)

	if status >= http.StatusBadRequest {
		return apiError(status, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, token string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures are transient and never retried here.
		return 0, nil, fmt.Errorf("dispatch %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	return resp.StatusCode, data, nil
}

// renewCredential issues (or joins) the single in-flight renewal call.
// All concurrent callers observe the same outcome: the new token, or a
// terminal unauthenticated error after the session has been cleared.
// staleToken is the credential the failing request was sent with; if a
// different credential is already stored, another caller's renewal has
// landed and no new call is issued.
func (c *Client) renewCredential(ctx context.Context, staleToken string) (string, error) {
	if c.metrics != nil {
		c.metrics.RenewalWaiters.Inc()
		defer c.metrics.RenewalWaiters.Dec()
	}

	v, err, _ := c.renew.Do("credential-renewal", func() (any, error) {
		if current := c.creds.Token(); current != "" && current != staleToken {
			return current, nil
		}
		if c.hooks != nil {
			c.hooks.RenewalStarted()
		}
		if c.metrics != nil {
			c.metrics.TokenRenewals.Inc()
		}
		c.logger.Info().Msg("renewing access credential")

		// The renewal must resolve for every waiter even if the caller
		// that started it goes away, so it runs on a detached context.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.http.Timeout)
		defer cancel()

		status, data, err := c.do(rctx, http.MethodPost, "/auth/refresh", []byte("{}"), "")
		if err == nil && status == http.StatusOK {
			var out wire.RefreshResponse
			if jsonErr := json.Unmarshal(data, &out); jsonErr == nil && out.AccessToken != "" {
				c.creds.Set(out.AccessToken)
				if c.hooks != nil {
					c.hooks.RenewalSucceeded()
				}
				c.logger.Info().Msg("access credential renewed")
				return out.AccessToken, nil
			}
			err = fmt.Errorf("malformed renewal response")
		}
		if err == nil {
			err = apiError(status, data)
		}

		if c.metrics != nil {
			c.metrics.TokenRenewalErrors.Inc()
		}
		c.logger.Warn().Err(err).Int("status", status).Msg("credential renewal failed, clearing session")

		c.creds.Clear()
		if c.hooks != nil {
			c.hooks.RenewalFailed()
		}
		return nil, fmt.Errorf("credential renewal failed: %w", domain.ErrUnauthenticated)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) observe(method string, status int, start time.Time) {
	if c.metrics == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	c.metrics.GatewayRequests.WithLabelValues(method, label).Inc()
	c.metrics.GatewayDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
