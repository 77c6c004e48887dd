package main

import (
	"flag"
	"io"
	"testing"
)

func TestGenderPrecedence(t *testing.T) {
	cases := []struct {
		m, f, ta bool
		want     string
	}{
		{false, false, false, ""},
		{true, false, false, "male"},
		{true, true, false, "female"},
		{true, true, true, "ta"},
		{false, true, true, "ta"},
	}
	for _, c := range cases {
		if got := gender(c.m, c.f, c.ta); got != c.want {
			t.Errorf("gender(%v,%v,%v)=%q want %q", c.m, c.f, c.ta, got, c.want)
		}
	}
}

func TestPositional(t *testing.T) {
	area, num, err := positional([]string{"jp", "3"})
	if err != nil || area != "jp" || num == nil || *num != 3 {
		t.Fatalf("got %q %v %v", area, num, err)
	}

	area, num, err = positional([]string{"7"})
	if err != nil || area != "" || num == nil || *num != 7 {
		t.Fatalf("count only: got %q %v %v", area, num, err)
	}

	area, num, err = positional(nil)
	if err != nil || area != "" || num != nil {
		t.Fatalf("empty: got %q %v %v", area, num, err)
	}

	if _, _, err := positional([]string{"jp", "en"}); err == nil {
		t.Fatalf("expected error for two areas")
	}
	if _, _, err := positional([]string{"1", "2"}); err == nil {
		t.Fatalf("expected error for two counts")
	}
}

func TestEnvTarget(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "ja_JP.UTF-8")
	if got := envTarget(); got != "ja_JP" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("LANG", "C")
	if got := envTarget(); got != "" {
		t.Fatalf("C locale: got %q", got)
	}
	t.Setenv("LC_ALL", "en_GB.UTF-8@euro")
	if got := envTarget(); got != "en_GB" {
		t.Fatalf("LC_ALL: got %q", got)
	}
}

func TestInterleaved(t *testing.T) {
	newSet := func() (*flag.FlagSet, *bool, *string) {
		fs := flag.NewFlagSet("draw", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		return fs, fs.Bool("w", false, ""), fs.String("target", "", "")
	}

	fs, w, target := newSet()
	args, err := interleaved(fs, []string{"jp", "3", "-w", "-target", "en"})
	if err != nil || !*w || *target != "en" {
		t.Fatalf("flags after positionals: args=%v w=%v target=%q err=%v", args, *w, *target, err)
	}
	if len(args) != 2 || args[0] != "jp" || args[1] != "3" {
		t.Fatalf("args = %v", args)
	}

	fs, w, _ = newSet()
	args, err = interleaved(fs, []string{"-w", "en", "--", "-w"})
	if err != nil || !*w || len(args) != 2 || args[1] != "-w" {
		t.Fatalf("terminator: args=%v err=%v", args, err)
	}

	fs, _, _ = newSet()
	if _, err := interleaved(fs, []string{"jp", "-nope"}); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}
