// Package service contains the name drawing workflow
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"namejar/internal/core/corpus"
	"namejar/internal/core/locale"
	"namejar/internal/core/namegen"
	perr "namejar/internal/platform/errors"
	"namejar/internal/platform/logger"
	"namejar/internal/platform/metrics"
	"namejar/internal/services/names/domain"

	"github.com/google/uuid"
)

// Service defines the names service contract
type Service interface {
	domain.ServicePort
}

// Corpus is what the service needs from a loaded pack
type Corpus interface {
	namegen.Source
	Summaries() []corpus.Summary
}

// Svc implements the names service
type Svc struct {
	engine *namegen.Engine
	corpus Corpus
	tr     domain.Translator
	m      *metrics.Set
	opts   Options

	newID func() string
	now   func() time.Time
}

// Option tweaks a Svc at construction
type Option func(*Svc)

// WithTranslator enables translation; nil leaves it disabled
func WithTranslator(tr domain.Translator) Option { return func(s *Svc) { s.tr = tr } }

// WithMetrics reports draws to m
func WithMetrics(m *metrics.Set) Option { return func(s *Svc) { s.m = m } }

// WithRand replaces the randomness used for unseeded draws
func WithRand(r namegen.Rand) Option {
	return func(s *Svc) {
		s.engine = namegen.New(s.corpus, namegen.Options{MaxCount: s.opts.MaxCount, Rand: r})
	}
}

// New constructs a names service
func New(c Corpus, o Options, opts ...Option) *Svc {
	if c == nil {
		panic("names.Service requires a non nil Corpus")
	}
	d := Defaults()
	if o.MaxCount < 1 {
		o.MaxCount = d.MaxCount
	}
	if o.Split == "" {
		o.Split = d.Split
	}
	if o.Template == "" {
		o.Template = d.Template
	}
	if o.DefaultLocale == "" {
		o.DefaultLocale = d.DefaultLocale
	}
	s := &Svc{
		engine: namegen.New(c, namegen.Options{MaxCount: o.MaxCount}),
		corpus: c,
		opts:   o,
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// Options returns the effective options
func (s *Svc) Options() Options { return s.opts }

// TranslatorEnabled reports whether a translator is wired
func (s *Svc) TranslatorEnabled() bool { return s.tr != nil }

// Draw draws a batch, renders it and optionally translates every name
func (s *Svc) Draw(ctx context.Context, in domain.DrawInput) (domain.DrawResult, error) {
	start := s.now()

	tag := strings.TrimSpace(in.Locale)
	if tag == "" {
		tag = s.opts.DefaultLocale
	}
	fam := locale.MustParse(tag)

	count := s.opts.DefaultCount
	if in.Count != nil {
		count = *in.Count
	}
	weighted := s.opts.Weights
	if in.Weights != nil {
		weighted = *in.Weights
	}

	names, err := s.engine.DrawNames(namegen.Request{
		Locale:   tag,
		Count:    count,
		Weighted: weighted,
		Category: namegen.ParseCategory(in.Gender),
		Seed:     in.Seed,
	})
	if err != nil {
		if errors.Is(err, namegen.ErrMalformedCorpus) {
			return domain.DrawResult{}, perr.Wrapf(err, perr.ErrorCodeMalformedCorpus, "names: corpus for %s cannot produce a name", fam)
		}
		return domain.DrawResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "names: draw failed")
	}

	res := domain.DrawResult{
		BatchID: s.newID(),
		Locale:  fam.String(),
		Names:   make([]string, len(names)),
	}
	for i, n := range names {
		res.Names[i] = n.String()
		if n.Fallback {
			res.Fallbacks++
		}
	}

	ctx = logger.WithRequest(ctx, "", res.BatchID)
	display := res.Names
	if in.Translate {
		res.Translations, display = s.translate(ctx, fam, in.Target, res.Names)
	}
	res.Text = join(display, s.opts.Split)

	if s.m != nil {
		s.m.Batches.WithLabelValues(res.Locale).Inc()
		s.m.Drawn.WithLabelValues(res.Locale).Add(float64(len(res.Names)))
		if res.Fallbacks > 0 {
			s.m.Fallbacks.WithLabelValues(res.Locale).Add(float64(res.Fallbacks))
		}
		s.m.DrawSeconds.WithLabelValues(res.Locale).Observe(s.now().Sub(start).Seconds())
	}

	logger.C(ctx).Debug().
		Str("locale", res.Locale).
		Int("count", len(res.Names)).
		Int("fallbacks", res.Fallbacks).
		Bool("weighted", weighted).
		Int("translations", len(res.Translations)).
		Msg("names drawn")

	return res, nil
}

// translate runs only when a translator is wired and target names a language
// other than the drawn family. Failures keep the original name
func (s *Svc) translate(ctx context.Context, fam locale.Family, target string, names []string) ([]domain.Translation, []string) {
	target = strings.TrimSpace(target)
	if s.tr == nil || target == "" {
		s.countTranslation("skipped", len(names))
		return nil, names
	}
	if tf, ok := locale.Parse(target); ok && tf == fam {
		s.countTranslation("skipped", len(names))
		return nil, names
	}

	log := logger.C(ctx)
	out := make([]domain.Translation, len(names))
	display := make([]string, len(names))
	for i, name := range names {
		out[i].Original = name
		display[i] = name

		translated, err := s.tr.Translate(ctx, name, target)
		if err != nil {
			out[i].Error = perr.WireFrom(err).Message
			s.countTranslation("error", 1)
			log.Warn().Err(err).
				Str("name", name).
				Str("target", target).
				Stringer("code", perr.CodeOf(err)).
				Bool("retryable", perr.Retryable(err)).
				Msg("translation failed")
			if ctx.Err() != nil {
				// remaining names keep their originals
				for j := i + 1; j < len(names); j++ {
					out[j] = domain.Translation{Original: names[j], Error: ctx.Err().Error()}
					display[j] = names[j]
				}
				break
			}
			continue
		}
		out[i].Translated = translated
		display[i] = s.render(name, translated)
		s.countTranslation("ok", 1)
	}
	return out, display
}

// render fills the display template; {0} is the original and {1} the translation
func (s *Svc) render(original, translated string) string {
	return strings.NewReplacer("{0}", original, "{1}", translated).Replace(s.opts.Template)
}

func (s *Svc) countTranslation(result string, n int) {
	if s.m != nil && n > 0 {
		s.m.Translations.WithLabelValues(result).Add(float64(n))
	}
}

// Locales describes the loaded corpora
func (s *Svc) Locales(_ context.Context) ([]domain.LocaleInfo, error) {
	def := locale.MustParse(s.opts.DefaultLocale)
	sums := s.corpus.Summaries()
	out := make([]domain.LocaleInfo, 0, len(sums))
	for _, sum := range sums {
		out = append(out, domain.LocaleInfo{
			Locale:     sum.Locale.String(),
			Pool:       sum.Pool,
			Surnames:   sum.Surnames,
			GivenNames: sum.GivenNames,
			Default:    sum.Locale == def,
		})
	}
	return out, nil
}

// join returns a single name bare and several joined by sep
func join(names []string, sep string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names, sep)
}
