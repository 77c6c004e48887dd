// Package corpus loads the surname and given-name corpora the name engine
// draws from. The default pack is embedded (corpus.json, built by
// namejar-corpuspacker); a directory of per-locale fragments can replace it
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"namejar/internal/core/locale"
	"namejar/internal/core/namegen"
)

//go:embed corpus.json
var embedded []byte

// PackVersion is the pack layout this package reads and writes
const PackVersion = 1

// Pack is a validated, normalized set of locale corpora
// It is immutable once built and safe for concurrent reads
type Pack struct {
	Version int
	Meta    map[string]any

	sets map[locale.Family]namegen.LocaleSet
}

// Summary describes one locale of a pack
type Summary struct {
	Locale     locale.Family  `json:"locale"`
	Pool       string         `json:"pool"` // "uniform" | "weighted"
	Surnames   int            `json:"surnames"`
	GivenNames map[string]int `json:"given_names"` // category -> size, absent categories omitted
}

// Load returns the embedded pack
func Load() (*Pack, error) { return Parse(embedded, FormatJSON) }

// MustLoad is Load that panics, for binaries that cannot run without a corpus
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse decodes a whole pack: {"version": 1, "meta": {...}, "locales": {"zh": {...}}}
func Parse(data []byte, f Format) (*Pack, error) {
	doc, err := decodeRaw(data, f)
	if err != nil {
		return nil, err
	}
	ver, _ := toFloat(doc["version"])
	if int(ver) != PackVersion {
		return nil, fmt.Errorf("corpus: unsupported pack version %v (want %d)", doc["version"], PackVersion)
	}
	locs, ok := doc["locales"].(map[string]any)
	if !ok || len(locs) == 0 {
		return nil, fmt.Errorf("corpus: pack has no locales: %w", namegen.ErrMalformedCorpus)
	}

	p := newPack()
	p.Meta, _ = doc["meta"].(map[string]any)
	for _, tag := range sortedKeys(locs) {
		v := locs[tag]
		raw, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("corpus: locale %q is %T, want mapping", tag, v)
		}
		if err := p.add(tag, raw); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newPack() *Pack {
	return &Pack{Version: PackVersion, sets: make(map[locale.Family]namegen.LocaleSet, 3)}
}

// add builds and registers one locale; tag must name a supported family
func (p *Pack) add(tag string, raw map[string]any) error {
	fam := locale.Family(tag)
	if !fam.Known() {
		return fmt.Errorf("corpus: unsupported locale %q", tag)
	}
	if _, dup := p.sets[fam]; dup {
		return fmt.Errorf("corpus: duplicate locale %q", tag)
	}
	set, err := buildLocale(fam, raw)
	if err != nil {
		return err
	}
	p.sets[fam] = set
	return nil
}

// Lookup implements namegen.Source
func (p *Pack) Lookup(f locale.Family) (namegen.LocaleSet, bool) {
	set, ok := p.sets[f]
	return set, ok
}

// Families lists the loaded locales in display order
func (p *Pack) Families() []locale.Family {
	out := make([]locale.Family, 0, len(p.sets))
	for _, f := range locale.All() {
		if _, ok := p.sets[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Summaries describes every loaded locale in display order
func (p *Pack) Summaries() []Summary {
	out := make([]Summary, 0, len(p.sets))
	for _, f := range p.Families() {
		set := p.sets[f]
		s := Summary{
			Locale:     f,
			Pool:       "uniform",
			Surnames:   set.Surnames.Len(),
			GivenNames: map[string]int{},
		}
		if set.Surnames.Weighted() {
			s.Pool = "weighted"
		}
		for _, c := range set.Names.Available() {
			s.GivenNames[c.String()] = len(set.Names.Of(c))
		}
		out = append(out, s)
	}
	return out
}

type wireLocale struct {
	Surname any                 `json:"surname"`
	Name    map[string][]string `json:"name"`
}

type wirePack struct {
	Version int                   `json:"version"`
	Meta    map[string]any        `json:"meta,omitempty"`
	Locales map[string]wireLocale `json:"locales"`
}

// MarshalJSON writes the pack in the layout Parse reads
// Absent categories are written as null
func (p *Pack) MarshalJSON() ([]byte, error) {
	out := wirePack{Version: p.Version, Meta: p.Meta, Locales: make(map[string]wireLocale, len(p.sets))}
	for f, set := range p.sets {
		wl := wireLocale{Name: make(map[string][]string, 3)}
		switch pool := set.Surnames.(type) {
		case namegen.WeightedPool:
			m := make(map[string]float64, pool.Len())
			for _, e := range pool.Entries() {
				m[e.Name] = e.Weight
			}
			wl.Surname = m
		default:
			wl.Surname = pool.Names()
		}
		for _, c := range namegen.Categories() {
			wl.Name[c.String()] = set.Names.Of(c)
		}
		out.Locales[f.String()] = wl
	}
	return json.Marshal(out)
}

// sortedKeys is used for deterministic iteration over decoded documents
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
