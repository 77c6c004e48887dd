package translate

import (
	"context"
	"net/http"

	perr "namejar/internal/platform/errors"
)

// Ping checks the service is reachable by listing its languages
// It bypasses the throttle and retries so readiness probes stay fast
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/languages", nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "translate: new ping request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: ping failed")
	}
	_ = drainAndClose(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return perr.Newf(perr.ErrorCodeUnavailable, "translate: ping status %d", resp.StatusCode)
	}
	return nil
}
