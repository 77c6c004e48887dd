// Package locale maps free-form locale tags onto the corpus locale families
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Family selects a corpus and a formatting rule
type Family string

// Supported families. The zero value is not a family; Parse never returns it
const (
	ZH Family = "zh"
	EN Family = "en"
	JP Family = "jp"
)

// Default is used for any tag that does not resolve to a supported family
const Default = ZH

// All lists the supported families in display order
func All() []Family { return []Family{ZH, EN, JP} }

// String implements fmt.Stringer
func (f Family) String() string { return string(f) }

// Known reports whether f is one of the supported families
func (f Family) Known() bool {
	switch f {
	case ZH, EN, JP:
		return true
	}
	return false
}

// Parse resolves tag to a family, returning ok=false (and Default) when it
// cannot. Accepts the short family tags ("zh", "en", "jp") and BCP-47 tags
// such as "ja-JP", "zh-Hant-TW" or "en_GB"
func Parse(tag string) (Family, bool) {
	s := strings.ToLower(strings.TrimSpace(tag))
	if s == "" {
		return Default, false
	}
	if f := Family(s); f.Known() {
		return f, true
	}
	t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Default, false
	}
	base, conf := t.Base()
	if conf == language.No {
		return Default, false
	}
	switch base.String() {
	case "zh":
		return ZH, true
	case "en":
		return EN, true
	case "ja":
		return JP, true
	}
	return Default, false
}

// MustParse is Parse without the ok flag
func MustParse(tag string) Family {
	f, _ := Parse(tag)
	return f
}

// FromAcceptLanguage picks the first family named in an Accept-Language
// header value. ok is false when nothing in the header maps to a family
func FromAcceptLanguage(header string) (Family, bool) {
	if strings.TrimSpace(header) == "" {
		return Default, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default, false
	}
	for _, t := range tags {
		if f, ok := Parse(t.String()); ok {
			return f, true
		}
	}
	return Default, false
}
