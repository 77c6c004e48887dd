package corpus

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"namejar/internal/core/locale"
	"namejar/internal/core/namegen"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a corpus file
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf derives the format from a file extension
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

// decodeRaw decodes any supported format into a generic document
func decodeRaw(data []byte, f Format) (map[string]any, error) {
	doc := map[string]any{}
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("corpus: unsupported format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("corpus: decode %s: %w", f, err)
	}
	return doc, nil
}

// buildLocale turns one {"surname": ..., "name": {...}} block into a LocaleSet
// The surname shape picks the variant: a list is a UniformPool, a mapping a WeightedPool
func buildLocale(fam locale.Family, raw map[string]any) (namegen.LocaleSet, error) {
	set := namegen.LocaleSet{Family: fam}

	switch v := raw["surname"].(type) {
	case []any:
		l, err := stringList(v)
		if err != nil {
			return set, fmt.Errorf("corpus: %s surname: %w", fam, err)
		}
		set.Surnames = namegen.UniformPool(normalizeAll(l))
	case map[string]any:
		weights := make(map[string]float64, len(v))
		for k, w := range v {
			n, ok := toFloat(w)
			if !ok {
				return set, fmt.Errorf("corpus: %s surname %q: weight %v is not a number: %w", fam, k, w, namegen.ErrMalformedCorpus)
			}
			name := Normalize(k)
			weights[name] += n
		}
		pool, err := namegen.NewWeightedPool(weights)
		if err != nil {
			return set, fmt.Errorf("corpus: %s: %w", fam, err)
		}
		set.Surnames = pool
	case nil:
		return set, fmt.Errorf("corpus: %s has no surname field: %w", fam, namegen.ErrMalformedCorpus)
	default:
		return set, fmt.Errorf("corpus: %s surname must be a list or a mapping, got %T: %w", fam, v, namegen.ErrMalformedCorpus)
	}

	names, ok := raw["name"].(map[string]any)
	if !ok {
		return set, fmt.Errorf("corpus: %s has no name mapping: %w", fam, namegen.ErrMalformedCorpus)
	}
	for key, v := range names {
		c := namegen.ParseCategory(key)
		if !c.Valid() || c.String() != key {
			return set, fmt.Errorf("corpus: %s name has unknown category %q: %w", fam, key, namegen.ErrMalformedCorpus)
		}
		if v == nil {
			continue
		}
		arr, ok := v.([]any)
		if !ok {
			return set, fmt.Errorf("corpus: %s name.%s must be a list or null: %w", fam, key, namegen.ErrMalformedCorpus)
		}
		l, err := stringList(arr)
		if err != nil {
			return set, fmt.Errorf("corpus: %s name.%s: %w", fam, key, err)
		}
		l = normalizeAll(l)
		switch c {
		case namegen.Male:
			set.Names.Male = l
		case namegen.Female:
			set.Names.Female = l
		case namegen.Ta:
			set.Names.Ta = l
		}
	}

	if err := set.Validate(); err != nil {
		return set, fmt.Errorf("corpus: %w", err)
	}
	return set, nil
}

func stringList(in []any) ([]string, error) {
	out := make([]string, 0, len(in))
	for i, v := range in {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("entry %d is %T, want string: %w", i, v, namegen.ErrMalformedCorpus)
		}
		out = append(out, s)
	}
	return out, nil
}

// toFloat accepts the numeric types the three decoders produce
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
