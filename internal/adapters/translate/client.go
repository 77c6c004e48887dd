// Package translate is an HTTP client for a LibreTranslate-compatible
// translation service. The names service uses it to annotate drawn names
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "namejar/internal/platform/errors"
	"namejar/internal/platform/logger"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultUA         = "namejar-translate"
	defaultMaxRetry   = 3
	defaultRetryBase  = 250 * time.Millisecond
	defaultRPS        = 5.0
	defaultBurst      = 5
	defaultPath       = "/translate"
	defaultResultPath = "translatedText"
	defaultSource     = "auto"
	maxBackoff        = 10 * time.Second
)

// Options configures the Client
type Options struct {
	// BaseURL of the service, e.g. http://localhost:5000; required
	BaseURL   string
	Path      string
	APIKey    string
	UserAgent string
	Timeout   time.Duration

	// Source language sent with every request, "auto" lets the service detect
	Source string
	// ResultPath is the gjson path of the translated text in the response
	ResultPath string

	// Client side throttle
	RatePerSec float64
	Burst      int

	// Retry config for transient and rate limited responses
	// Zero picks the default, negative disables retries
	MaxRetries int
	RetryBase  time.Duration
}

// Client translates short strings over HTTP with throttling and retries
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Path == "" {
		o.Path = defaultPath
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Source == "" {
		o.Source = defaultSource
	}
	if o.ResultPath == "" {
		o.ResultPath = defaultResultPath
	}
	if o.RatePerSec <= 0 {
		o.RatePerSec = defaultRPS
	}
	if o.Burst <= 0 {
		o.Burst = defaultBurst
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: rate.NewLimiter(rate.Limit(o.RatePerSec), o.Burst),
		log:     *logger.Named("translate"),
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

// Translate returns input rendered in the target language
// target is a locale tag; corpus family tags are mapped to ISO 639-1
func (c *Client) Translate(ctx context.Context, input, target string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", perr.InvalidArgf("translate: empty input")
	}
	lang := LanguageCode(target)
	if lang == "" {
		return "", perr.InvalidArgf("translate: empty target")
	}

	body, err := json.Marshal(request{Q: input, Source: c.opts.Source, Target: lang, Format: "text", APIKey: c.opts.APIKey})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "translate: encode request")
	}

	raw, err := c.do(ctx, body)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(raw) {
		return "", perr.Translationf("translate: response is not json")
	}
	res := gjson.GetBytes(raw, c.opts.ResultPath)
	if !res.Exists() {
		if msg := gjson.GetBytes(raw, "error"); msg.Exists() {
			return "", perr.Translationf("translate: service error: %s", msg.String())
		}
		return "", perr.Translationf("translate: %q missing from response", c.opts.ResultPath)
	}
	out := strings.TrimSpace(res.String())
	if out == "" {
		return "", perr.Translationf("translate: empty translation")
	}
	return out, nil
}

// do posts body with throttling, retries, and backoff and returns the response body
func (c *Client) do(ctx context.Context, body []byte) ([]byte, error) {
	url := c.opts.BaseURL + c.opts.Path
	attempts := 0
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: throttle wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "translate: new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if ctx.Err() != nil || !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: request failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Msg("translate transport error retrying")
			if err := c.sleep(ctx, back); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: cancelled during backoff")
			}
			attempts++
			continue
		}

		c.log.Debug().
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("translate http response")

		switch resp.StatusCode {
		case http.StatusOK:
			b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			_ = resp.Body.Close()
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeTranslation, "translate: read response")
			}
			return b, nil
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp.Header, c.now())
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				if resp.StatusCode == http.StatusTooManyRequests {
					return nil, perr.New(perr.ErrorCodeTooManyRequests, "translate: rate limited")
				}
				return nil, perr.Unavailablef("translate: upstream status %d", resp.StatusCode)
			}
			c.log.Warn().Int("status", resp.StatusCode).Dur("retry_in", wait).Int("attempt", attempts).Msg("translate transient error retrying")
			if err := c.sleep(ctx, wait); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: cancelled during backoff")
			}
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			msg := gjson.GetBytes(b, "error").String()
			if msg == "" {
				msg = strings.TrimSpace(string(b))
			}
			return nil, perr.Translationf("translate: unexpected status %d: %s", resp.StatusCode, msg)
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}
