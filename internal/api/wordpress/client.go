// Package wordpress implements the adapter contract against a
// WooCommerce/WordPress REST backend. Catalog endpoints authenticate with the
// static consumer key pair (Basic Auth); account and order endpoints carry
// the bearer session token. Cart and wishlist never leave the device: they
// live in the local store regardless of login state.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"storefront-client/internal/apperr"
	"storefront-client/internal/auth"
	"storefront-client/internal/logger"
	"storefront-client/internal/storage"
)

const (
	wcPath    = "/wp-json/wc/v3"
	tokenPath = "/wp-json/jwt-auth/v1/token"
	pushPath  = "/wp-json/store/v1/push-token"

	maxTries = 3
)

// outbound throttle: the backend is a shared shop instance, not a private API
const (
	outboundLimit = rate.Limit(10)
	outboundBurst = 20
)

type authMode int

const (
	authNone authMode = iota
	authBasic
	authBearer
)

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Timeout        time.Duration
}

type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string

	httpClient *http.Client
	limiter    *rate.Limiter

	store    storage.Store
	sessions *auth.Manager
}

func New(cfg Config, store storage.Store) *Client {
	if cfg.BaseURL == "" {
		logger.L().Warn("wordpress base URL is empty")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:        cfg.BaseURL,
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:  rate.NewLimiter(outboundLimit, outboundBurst),
		store:    store,
		sessions: auth.NewManager(store),
	}
}

// bearerToken returns the live session token or KindUnauthorized. An expired
// token fails here instead of burning a round trip.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	session, err := c.sessions.Load(ctx)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return "", apperr.New(apperr.KindUnauthorized, "wordpress.auth", "not signed in")
		}
		return "", err
	}
	if auth.Expired(session.Token) {
		return "", apperr.New(apperr.KindUnauthorized, "wordpress.auth", "session expired")
	}
	return session.Token, nil
}

// do issues one API call: throttle, build, send with retry on transient
// failures, classify the status, decode into out (out may be nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, mode authMode, out any) error {
	op := "wordpress " + method + " " + path

	if err := c.limiter.Wait(ctx); err != nil {
		return apperr.Wrap(apperr.KindNetwork, op, err)
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return apperr.Wrap(apperr.KindValidation, op, err)
		}
	}

	var token string
	if mode == authBearer {
		var err error
		token, err = c.bearerToken(ctx)
		if err != nil {
			return err
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	attempt := func() ([]byte, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, backoff.Permanent(apperr.Wrap(apperr.KindValidation, op, err))
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		switch mode {
		case authBasic:
			req.SetBasicAuth(c.consumerKey, c.consumerSecret)
		case authBearer:
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// transport failures retry
			return nil, apperr.Wrap(apperr.KindNetwork, op, err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindNetwork, op, err)
		}

		if resp.StatusCode >= 400 {
			kind := kindFromStatus(resp.StatusCode)
			apiErr := apperr.New(kind, op, fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(raw)))
			if resp.StatusCode >= 500 {
				// server hiccups retry, client errors do not
				return nil, apiErr
			}
			return nil, backoff.Permanent(apiErr)
		}

		return raw, nil
	}

	raw, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxTries),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("wordpress request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.FromCtx(ctx).Error("wordpress response decode failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return apperr.Wrap(apperr.KindNetwork, op, err)
	}
	return nil
}

func kindFromStatus(status int) apperr.Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperr.KindUnauthorized
	case status == http.StatusNotFound:
		return apperr.KindNotFound
	case status >= 500:
		return apperr.KindNetwork
	default:
		return apperr.KindValidation
	}
}

func truncate(raw []byte) string {
	const max = 256
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
