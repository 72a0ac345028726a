// Package rest provides the net/http implementation of api.Transport.
//
// The transport joins endpoints onto a base URL, sends JSON bodies, and
// decodes the dashboard envelope ({isSuccess, message, data}) from every
// response. Responses with error statuses become *api.HTTPFailure values
// carrying the message and field errors found in the body; requests that
// never produce a response become *api.NetworkFailure values.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// TenantHeader carries the tenant (store owner) a request acts for.
const TenantHeader = "X-Tenant-ID"

// Transport implements api.Transport over net/http.
// It performs exactly one attempt per call and never retries.
type Transport struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	limiter    *rate.Limiter
	logger     logrus.FieldLogger
}

// Compile-time check.
var _ api.Transport = (*Transport)(nil)

// New creates a transport for the backend at baseURL.
//
// Example:
//
//	transport, err := rest.New("https://api.example.com/v1",
//	    rest.WithBearerToken(token),
//	    rest.WithTenant("store-42"),
//	)
func New(baseURL string, opts ...Option) (*Transport, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	cfg := &config{headers: http.Header{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{}
	}
	if cfg.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		cfg.logger = logger
	}

	return &Transport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: cfg.httpClient,
		headers:    cfg.headers,
		limiter:    cfg.limiter,
		logger:     cfg.logger,
	}, nil
}

// BaseURL returns the base URL requests are sent to.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Do implements api.Transport.
func (t *Transport) Do(ctx context.Context, method, endpoint string, body any) (*api.RawEnvelope, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, &api.NetworkFailure{Method: method, Endpoint: endpoint, Err: err}
		}
	}

	req, err := t.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
		}).WithError(err).Debug("request failed without response")
		return nil, &api.NetworkFailure{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &api.NetworkFailure{Method: method, Endpoint: endpoint, Err: err}
	}

	t.logger.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"elapsed":  time.Since(start).String(),
	}).Debug("request completed")

	return decodeResponse(method, endpoint, resp.StatusCode, data)
}

func (t *Transport) newRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to encode request body", map[string]interface{}{
				"method":   method,
				"endpoint": endpoint,
			})
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.url(endpoint), reader)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to build request", map[string]interface{}{
			"method":   method,
			"endpoint": endpoint,
		})
	}

	for key, values := range t.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// url joins endpoint onto the base URL. The endpoint is not validated.
func (t *Transport) url(endpoint string) string {
	return t.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		err := errors.Wrap(err, errors.CodeInvalidInput, "invalid base URL")
		return errors.WithContext(err, "field", "base_url")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err := errors.Newf(errors.CodeInvalidInput, "base URL must be an absolute http(s) URL: %q", raw)
		return errors.WithContext(err, "field", "base_url")
	}
	return nil
}
