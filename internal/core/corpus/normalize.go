package corpus

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chainPool holds fresh transformer chains; a chain is not safe to share
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,                          // fullwidth latin, halfwidth kana, compatibility forms
			runes.Remove(runes.In(unicode.Cc)), // control chars incl. NUL and C1
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ BOM and friends
		)
	},
}

// Normalize cleans one corpus entry: invalid UTF-8 is dropped, the string
// is NFKC-normalized, control and format runes are removed and whitespace
// runs collapse to a single space. Case and script are left alone
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// collapse before the chain so tabs and newlines become spaces, not nothing
	s = strings.Join(strings.Fields(strings.ToValidUTF8(s, "")), " ")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}
	return strings.Join(strings.Fields(ns), " ")
}

// normalizeAll normalizes every entry and drops the ones left blank
func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := Normalize(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
