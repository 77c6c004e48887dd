// Package namegen composes synthetic personal names from locale corpora.
// It selects surnames (uniform or weighted), resolves a given-name category
// with fallback, renders per locale and draws bounded batches. The package
// is pure: randomness is injected and the corpus is read only
package namegen

import (
	"errors"
	"fmt"

	"namejar/internal/core/locale"
)

// ErrMalformedCorpus reports a locale that cannot produce a name: an empty
// surname pool or no given names in any category
var ErrMalformedCorpus = errors.New("malformed corpus")

// DefaultMaxCount bounds a batch when Options.MaxCount is unset
const DefaultMaxCount = 10

// LocaleSet is the corpus of one locale family
type LocaleSet struct {
	Family   locale.Family
	Surnames SurnamePool
	Names    GivenNames
}

// Validate reports ErrMalformedCorpus when s cannot produce a name
func (s LocaleSet) Validate() error {
	if s.Surnames == nil || s.Surnames.Len() == 0 {
		return fmt.Errorf("namegen: locale %q has no surnames: %w", s.Family, ErrMalformedCorpus)
	}
	if len(s.Names.Available()) == 0 {
		return fmt.Errorf("namegen: locale %q has no given names: %w", s.Family, ErrMalformedCorpus)
	}
	return nil
}

// Source looks up the corpus of a family
type Source interface {
	Lookup(f locale.Family) (LocaleSet, bool)
}

// Sets is an in-memory Source
type Sets map[locale.Family]LocaleSet

// Lookup implements Source
func (s Sets) Lookup(f locale.Family) (LocaleSet, bool) {
	set, ok := s[f]
	return set, ok
}

// Options configures an Engine
type Options struct {
	// MaxCount is the upper clamp for a batch, DefaultMaxCount when < 1
	MaxCount int
	// Rand is the randomness used when a request carries no seed, Global when nil
	Rand Rand
}

// Request describes one batch draw
type Request struct {
	// Locale is a family tag; unknown tags fall back to locale.Default
	Locale string
	// Count is clamped to [1, MaxCount]
	Count int
	// Weighted enables frequency-weighted surnames for weighted pools
	Weighted bool
	// Category overrides the random gender pick when its list is non-empty
	Category Category
	// Seed makes the draw reproducible when set
	Seed *uint64
}

// Engine draws batches of names from a Source
// It holds no mutable state and is safe for concurrent use as long as the
// configured Rand is
type Engine struct {
	src      Source
	maxCount int
	rand     Rand
}

// New constructs an Engine
func New(src Source, o Options) *Engine {
	if src == nil {
		panic("namegen.New requires a non nil Source")
	}
	if o.MaxCount < 1 {
		o.MaxCount = DefaultMaxCount
	}
	if o.Rand == nil {
		o.Rand = Global
	}
	return &Engine{src: src, maxCount: o.MaxCount, rand: o.Rand}
}

// MaxCount returns the configured batch bound
func (e *Engine) MaxCount() int { return e.maxCount }

// Clamp bounds n to [1, MaxCount]
func (e *Engine) Clamp(n int) int { return Clamp(n, e.maxCount) }

// Clamp bounds n to [1, limit]
func Clamp(n, limit int) int {
	if n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// DrawNames draws a batch and returns the parts of every name in draw order
func (e *Engine) DrawNames(req Request) ([]Name, error) {
	fam := locale.MustParse(req.Locale)
	set, ok := e.src.Lookup(fam)
	if !ok {
		return nil, fmt.Errorf("namegen: no corpus for locale %q: %w", fam, ErrMalformedCorpus)
	}

	r := e.rand
	if req.Seed != nil {
		r = Seeded(*req.Seed)
	}

	n := e.Clamp(req.Count)
	out := make([]Name, 0, n)
	for range n {
		nm, err := DrawOne(r, set, req.Weighted, req.Category)
		if err != nil {
			return nil, err
		}
		out = append(out, nm)
	}
	return out, nil
}

// Draw draws a batch and returns the rendered names in draw order
func (e *Engine) Draw(req Request) ([]string, error) {
	names, err := e.DrawNames(req)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out, nil
}

// DrawOne runs the selector, the resolver and a uniform given-name pick once
func DrawOne(r Rand, set LocaleSet, weighted bool, override Category) (Name, error) {
	surname, err := SelectSurname(r, set.Surnames, weighted)
	if err != nil {
		return Name{}, fmt.Errorf("locale %q: %w", set.Family, err)
	}
	res, err := ResolveGivenNames(r, set.Names, override)
	if err != nil {
		return Name{}, fmt.Errorf("locale %q: %w", set.Family, err)
	}
	return Name{
		Surname:  surname,
		Given:    res.Names[r.IntN(len(res.Names))],
		Family:   set.Family,
		Category: res.Category,
		Fallback: res.Fallback,
	}, nil
}
