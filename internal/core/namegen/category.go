package namegen

import "strings"

// Category is a given-name partition of a corpus
type Category uint8

const (
	// Unspecified asks the resolver to pick a category at random
	Unspecified Category = iota
	// Male names
	Male
	// Female names
	Female
	// Ta names carry no gender leaning
	Ta
)

// categories is the candidate set in canonical order
var categories = [...]Category{Male, Female, Ta}

// Categories returns the three concrete categories
func Categories() []Category { return categories[:] }

// String returns the corpus key for c
func (c Category) String() string {
	switch c {
	case Male:
		return "male"
	case Female:
		return "female"
	case Ta:
		return "ta"
	default:
		return "unspecified"
	}
}

// Valid reports whether c is one of the three concrete categories
func (c Category) Valid() bool { return c == Male || c == Female || c == Ta }

// ParseCategory maps user input to a category. Anything unrecognised is
// Unspecified, which the resolver treats as "no override"
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man", "男":
		return Male
	case "female", "f", "w", "woman", "女":
		return Female
	case "ta", "t", "other", "其他":
		return Ta
	default:
		return Unspecified
	}
}

// GivenNames holds the three category lists of one locale
// A nil slice means the corpus has no data for that category
type GivenNames struct {
	Male   []string
	Female []string
	Ta     []string
}

// Of returns the list for c, nil for Unspecified
func (g GivenNames) Of(c Category) []string {
	switch c {
	case Male:
		return g.Male
	case Female:
		return g.Female
	case Ta:
		return g.Ta
	default:
		return nil
	}
}

// Available lists the categories with at least one name, in canonical order
func (g GivenNames) Available() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if len(g.Of(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}
