package translate

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"namejar/internal/core/locale"
)

// LanguageCode maps a locale tag to the ISO 639-1 code translation services expect
// Corpus family tags are special-cased ("jp" is not a language code); anything
// else passes through with the region dropped
func LanguageCode(tag string) string {
	s := strings.ToLower(strings.TrimSpace(tag))
	if s == "" {
		return ""
	}
	if f, ok := locale.Parse(s); ok {
		switch f {
		case locale.JP:
			return "ja"
		default:
			return f.String()
		}
	}
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	return s
}

// retryAfter reads Retry-After as seconds or an HTTP date
func retryAfter(h http.Header, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if sec, err := strconv.Atoi(v); err == nil {
		if sec <= 0 {
			return 0
		}
		return min(time.Duration(sec)*time.Second, maxBackoff)
	}
	if t, err := http.ParseTime(v); err == nil && t.After(now) {
		return min(t.Sub(now), maxBackoff)
	}
	return 0
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
