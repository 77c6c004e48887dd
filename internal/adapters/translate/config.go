package translate

import "namejar/internal/platform/config"

// FromConfig reads Options from c (typically the CORE_TRANSLATE_ prefix)
// URL is optional; Enabled reports whether a translator should be wired
func FromConfig(c config.Conf) Options {
	return Options{
		BaseURL:    c.MayString("URL", ""),
		Path:       c.MayString("PATH", defaultPath),
		APIKey:     c.MayString("API_KEY", ""),
		Timeout:    c.MayDuration("TIMEOUT", defaultTimeout),
		Source:     c.MayString("SOURCE", defaultSource),
		ResultPath: c.MayString("RESULT_PATH", defaultResultPath),
		RatePerSec: c.MayFloat64("RPS", defaultRPS),
		Burst:      c.MayInt("BURST", defaultBurst),
		MaxRetries: c.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:  c.MayDuration("RETRY_BASE", defaultRetryBase),
	}
}

// Enabled reports whether o points at a service
func (o Options) Enabled() bool { return o.BaseURL != "" }

