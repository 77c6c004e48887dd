package service

import (
	"namejar/internal/core/locale"
	"namejar/internal/core/namegen"
	"namejar/internal/platform/config"
)

// Options are the draw defaults and display settings
type Options struct {
	MaxCount      int    // batch upper bound
	DefaultCount  int    // count when the request has none
	Weights       bool   // weighted surnames when the request does not say
	Split         string // separator between names in Text
	Template      string // display template, {0} original and {1} translation
	DefaultLocale string // locale when the request has none
}

// Defaults mirrors the shipped configuration
func Defaults() Options {
	return Options{
		MaxCount:      namegen.DefaultMaxCount,
		DefaultCount:  5,
		Weights:       false,
		Split:         "、",
		Template:      "{0}（{1}）",
		DefaultLocale: locale.Default.String(),
	}
}

// FromConfig reads Options from c (typically the CORE_NAMES_ prefix)
func FromConfig(c config.Conf) Options {
	d := Defaults()
	return Options{
		MaxCount:      c.MayInt("MAX_COUNT", d.MaxCount),
		DefaultCount:  c.MayInt("DEFAULT_COUNT", d.DefaultCount),
		Weights:       c.MayBool("WEIGHTS", d.Weights),
		Split:         c.MayRaw("SPLIT", d.Split),
		Template:      c.MayString("TRANSLATOR_EXAMPLE", d.Template),
		DefaultLocale: c.MayEnum("DEFAULT_LOCALE", d.DefaultLocale, "zh", "en", "jp"),
	}
}
