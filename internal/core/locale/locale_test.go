package locale

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Family
		ok   bool
	}{
		{"zh", ZH, true},
		{"EN", EN, true},
		{" jp ", JP, true},
		{"ja", JP, true},
		{"ja-JP", JP, true},
		{"ja_JP", JP, true},
		{"zh-Hant-TW", ZH, true},
		{"en-GB", EN, true},
		{"fr", Default, false},
		{"", Default, false},
		{"!!", Default, false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Parse(%q)=(%q,%v) want (%q,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMustParse_DefaultsToZH(t *testing.T) {
	if got := MustParse("ko-KR"); got != ZH {
		t.Fatalf("got %q want zh", got)
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	if f, ok := FromAcceptLanguage("fr-CH, fr;q=0.9, ja;q=0.8, en;q=0.7"); !ok || f != JP {
		t.Fatalf("got (%q,%v) want jp", f, ok)
	}
	if f, ok := FromAcceptLanguage("en-US,en;q=0.9"); !ok || f != EN {
		t.Fatalf("got (%q,%v) want en", f, ok)
	}
	if _, ok := FromAcceptLanguage("de, fr"); ok {
		t.Fatalf("expected no match")
	}
	if _, ok := FromAcceptLanguage(""); ok {
		t.Fatalf("expected no match for empty header")
	}
}

func TestKnown(t *testing.T) {
	for _, f := range All() {
		if !f.Known() {
			t.Fatalf("%q should be known", f)
		}
	}
	if Family("ko").Known() || Family("").Known() {
		t.Fatalf("unexpected known family")
	}
}
