package namegen

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SurnamePool is the surname field of a corpus: either a UniformPool or a
// WeightedPool. The interface is sealed; selection dispatches on the variant
type SurnamePool interface {
	// Len is the number of distinct entries
	Len() int
	// Names lists the entries in pool order
	Names() []string
	// Weighted reports whether the pool carries frequency data
	Weighted() bool

	pick(r Rand, weighted bool) string
}

// UniformPool is an ordered surname list without frequency data
type UniformPool []string

// Len implements SurnamePool
func (p UniformPool) Len() int { return len(p) }

// Names implements SurnamePool
func (p UniformPool) Names() []string { return append([]string(nil), p...) }

// Weighted implements SurnamePool
func (UniformPool) Weighted() bool { return false }

// weighting is structurally impossible without weights, so the flag is ignored
func (p UniformPool) pick(r Rand, _ bool) string { return p[r.IntN(len(p))] }

// WeightedSurname is one entry of a WeightedPool
type WeightedSurname struct {
	Name   string
	Weight float64
}

// WeightedPool maps surnames to positive relative frequencies
// Entries are kept sorted by name so a seeded draw walks them in a stable order
type WeightedPool struct {
	entries []WeightedSurname
	total   float64
}

// NewWeightedPool builds a pool from a surname -> weight mapping
// Blank names and non-positive or non-finite weights are rejected
func NewWeightedPool(weights map[string]float64) (WeightedPool, error) {
	entries := make([]WeightedSurname, 0, len(weights))
	var total float64
	for name, w := range weights {
		if strings.TrimSpace(name) == "" {
			return WeightedPool{}, fmt.Errorf("namegen: blank surname in weighted pool: %w", ErrMalformedCorpus)
		}
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return WeightedPool{}, fmt.Errorf("namegen: surname %q has invalid weight %v: %w", name, w, ErrMalformedCorpus)
		}
		entries = append(entries, WeightedSurname{Name: name, Weight: w})
		total += w
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return WeightedPool{entries: entries, total: total}, nil
}

// MustWeightedPool is NewWeightedPool that panics on error, for literals and tests
func MustWeightedPool(weights map[string]float64) WeightedPool {
	p, err := NewWeightedPool(weights)
	if err != nil {
		panic(err)
	}
	return p
}

// Len implements SurnamePool
func (p WeightedPool) Len() int { return len(p.entries) }

// Names implements SurnamePool
func (p WeightedPool) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Name
	}
	return out
}

// Weighted implements SurnamePool
func (WeightedPool) Weighted() bool { return true }

// Entries returns a copy of the weighted entries in pool order
func (p WeightedPool) Entries() []WeightedSurname {
	return append([]WeightedSurname(nil), p.entries...)
}

// Total is the sum of all weights
func (p WeightedPool) Total() float64 { return p.total }

func (p WeightedPool) pick(r Rand, weighted bool) string {
	if !weighted {
		return p.entries[r.IntN(len(p.entries))].Name
	}
	u := r.Float64() * p.total
	var acc float64
	for _, e := range p.entries {
		acc += e.Weight
		if acc > u {
			return e.Name
		}
	}
	// float rounding can leave u == total
	return p.entries[len(p.entries)-1].Name
}

// SelectSurname draws one surname from pool. With weighted set and a
// WeightedPool the draw is proportional to weight, otherwise it is uniform
// over the distinct entries
func SelectSurname(r Rand, pool SurnamePool, weighted bool) (string, error) {
	if pool == nil || pool.Len() == 0 {
		return "", fmt.Errorf("namegen: empty surname pool: %w", ErrMalformedCorpus)
	}
	return pool.pick(r, weighted), nil
}
