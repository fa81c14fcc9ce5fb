package imageload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/extensioncollection/kit/pkg/async"
	"github.com/extensioncollection/kit/pkg/logger"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxBytes  = 10 << 20
	defaultUserAgent = "extensioncollection-kit/imageload"
)

// Loader fetches and decodes images. It is safe for concurrent use.
type Loader struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
	logger    *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the HTTP client. The client's own timeout applies
// and WithTimeout is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithTimeout bounds each request of the default client.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithMaxBytes caps the response body. Non-positive values keep the default.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		if ua != "" {
			l.userAgent = ua
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{
		timeout:   defaultTimeout,
		maxBytes:  defaultMaxBytes,
		userAgent: defaultUserAgent,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// NewFromConfig builds a Loader from cfg. Options are applied after cfg and
// take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Loader {
	base := []Option{
		WithTimeout(cfg.Timeout),
		WithMaxBytes(cfg.MaxBytes),
		WithUserAgent(cfg.UserAgent),
	}
	return New(append(base, opts...)...)
}

// Fetch downloads rawURL and decodes it. It returns the image and the format
// name reported by the decoder ("png", "jpeg", "gif").
func (l *Loader) Fetch(ctx context.Context, rawURL string) (image.Image, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", errors.Join(ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "image/png, image/jpeg, image/gif, image/*;q=0.8")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if resp.ContentLength > l.maxBytes {
		return nil, "", fmt.Errorf("%w: content length %d", ErrTooLarge, resp.ContentLength)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, "", errors.Join(ErrRequestFailed, err)
	}
	if int64(len(body)) > l.maxBytes {
		return nil, "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, l.maxBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, "", errors.Join(ErrDecode, err)
	}
	return img, format, nil
}

// Load starts Fetch in the background.
func (l *Loader) Load(ctx context.Context, rawURL string) *async.Future[image.Image] {
	return async.Async(ctx, rawURL, func(ctx context.Context, u string) (image.Image, error) {
		img, _, err := l.Fetch(ctx, u)
		return img, err
	})
}

// LoadInto fetches rawURL in the background and calls deliver exactly once
// with the image on success. deliver is never called on failure; the error is
// logged at warn level. The returned channel is closed when the attempt
// finishes, for callers that need to wait.
func (l *Loader) LoadInto(ctx context.Context, rawURL string, deliver func(image.Image)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		start := time.Now()
		img, format, err := l.Fetch(ctx, rawURL)
		if err != nil {
			l.logger.WarnContext(ctx, "image load failed",
				logger.Component("imageload"),
				logger.URL(rawURL),
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			return
		}
		l.logger.DebugContext(ctx, "image loaded",
			logger.Component("imageload"),
			logger.URL(rawURL),
			slog.String("format", format),
			logger.Duration(time.Since(start)),
		)
		if deliver != nil {
			deliver(img)
		}
	}()
	return done
}
