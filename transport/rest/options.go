package rest

import (
	"net/http"

	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// config holds configuration for Transport.
type config struct {
	httpClient *http.Client
	headers    http.Header
	limiter    *rate.Limiter
	logger     logrus.FieldLogger
}

// Option configures the transport.
type Option func(*config) error

// WithHTTPClient sets the HTTP client used for requests. Timeouts, proxies
// and TLS settings are taken from it as is.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "http client cannot be nil")
			return errors.WithContext(err, "field", "http_client")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithBearerToken authenticates every request with the given token.
func WithBearerToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.headers.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// WithTenant scopes every request to a tenant via the X-Tenant-ID header.
func WithTenant(tenantID string) Option {
	return func(cfg *config) error {
		if tenantID == "" {
			err := errors.New(errors.CodeInvalidInput, "tenant cannot be empty")
			return errors.WithContext(err, "field", "tenant")
		}
		cfg.headers.Set(TenantHeader, tenantID)
		return nil
	}
}

// WithHeader adds a static header to every request.
func WithHeader(key, value string) Option {
	return func(cfg *config) error {
		if key == "" {
			err := errors.New(errors.CodeInvalidInput, "header name cannot be empty")
			return errors.WithContext(err, "field", "header")
		}
		cfg.headers.Add(key, value)
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(cfg *config) error {
		if userAgent != "" {
			cfg.headers.Set("User-Agent", userAgent)
		}
		return nil
	}
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst. Calls wait for a token; a cancelled wait is a network failure.
func WithRateLimit(rps float64, burst int) Option {
	return func(cfg *config) error {
		if rps <= 0 || burst < 1 {
			err := errors.Newf(errors.CodeInvalidInput, "invalid rate limit: %v/s burst %d", rps, burst)
			return errors.WithContext(err, "field", "rate_limit")
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}
