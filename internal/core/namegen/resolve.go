package namegen

import "fmt"

// Resolution is the outcome of resolving a given-name category
type Resolution struct {
	Category Category
	Names    []string
	// Fallback is set when the randomly chosen candidate was empty and the
	// shuffled rescan picked the category instead
	Fallback bool
}

// ResolveGivenNames picks the category to draw a given name from
//
// An override whose list is non-empty wins. Otherwise a candidate is drawn
// uniformly from the three categories; if that list is empty the categories
// are shuffled and the first non-empty one is used. A locale with no names
// in any category is malformed
func ResolveGivenNames(r Rand, names GivenNames, override Category) (Resolution, error) {
	if override.Valid() {
		if l := names.Of(override); len(l) > 0 {
			return Resolution{Category: override, Names: l}, nil
		}
	}

	cand := categories[r.IntN(len(categories))]
	if l := names.Of(cand); len(l) > 0 {
		return Resolution{Category: cand, Names: l}, nil
	}

	order := categories
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, c := range order {
		if l := names.Of(c); len(l) > 0 {
			return Resolution{Category: c, Names: l, Fallback: true}, nil
		}
	}
	return Resolution{}, fmt.Errorf("namegen: no given names in any category: %w", ErrMalformedCorpus)
}
