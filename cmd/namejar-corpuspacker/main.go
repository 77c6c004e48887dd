// Command namejar-corpuspacker assembles a corpus source directory into the embedded pack
//
//	namejar-corpuspacker                 # newest ./corpora/<n>, writes internal/core/corpus/corpus.json
//	namejar-corpuspacker -root corpora/1 -out - -pretty=false
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"namejar/internal/core/corpus"
	"namejar/internal/platform/logger"
)

const rootEnv = "NAMEJAR_CORPUS_ROOT"

// searchPath is consulted after the flag and rootEnv
var searchPath = []string{"./corpora", "/app/corpora"}

// versionDir accepts a version directory holding core.json, or a parent of
// numbered version directories in which case the highest number wins
func versionDir(p string) (string, bool) {
	if isVersion(p) {
		return p, true
	}
	ents, err := os.ReadDir(p)
	if err != nil {
		return "", false
	}
	best := -1
	for _, e := range ents {
		n, err := strconv.Atoi(e.Name())
		if err != nil || !e.IsDir() || !isVersion(filepath.Join(p, e.Name())) {
			continue
		}
		best = max(best, n)
	}
	if best < 0 {
		return "", false
	}
	return filepath.Join(p, strconv.Itoa(best)), true
}

func isVersion(dir string) bool {
	st, err := os.Stat(filepath.Join(dir, "core.json"))
	return err == nil && !st.IsDir()
}

// resolveRoot returns the first usable candidate and every path it looked at
func resolveRoot(flagRoot string) (string, []string, error) {
	candidates := slices.DeleteFunc(
		append([]string{flagRoot, strings.TrimSpace(os.Getenv(rootEnv))}, searchPath...),
		func(s string) bool { return s == "" },
	)
	for i, c := range candidates {
		if dir, ok := versionDir(c); ok {
			return dir, candidates[:i+1], nil
		}
	}
	return "", candidates, errors.New("no corpus version directory (core.json) found")
}

// encode renders the pack, indented when pretty
func encode(p *corpus.Pack, pretty bool) ([]byte, error) {
	raw, err := p.MarshalJSON()
	if err != nil || !pretty {
		return raw, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func run(root, out string, pretty bool) error {
	log := logger.Named("corpuspacker")

	dir, tried, err := resolveRoot(root)
	if err != nil {
		return fmt.Errorf("%w (tried %s; run from the repo root or set %s)", err, strings.Join(tried, ", "), rootEnv)
	}
	pack, err := corpus.LoadDir(dir)
	if err != nil {
		return err
	}
	for _, s := range pack.Summaries() {
		log.Debug().Str("locale", s.Locale.String()).Int("surnames", s.Surnames).Str("pool", s.Pool).Interface("given", s.GivenNames).Msg("locale")
	}

	enc, err := encode(pack, pretty)
	if err != nil {
		return err
	}
	enc = append(enc, '\n')

	if out == "-" {
		_, err = os.Stdout.Write(enc)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, enc, 0o644); err != nil {
		return err
	}
	log.Info().Str("root", dir).Str("out", out).Int("bytes", len(enc)).Int("locales", len(pack.Families())).Msg("corpus packed")
	return nil
}

func main() {
	root := flag.String("root", "", "corpus version directory (./corpora/1) or its parent (./corpora)")
	out := flag.String("out", "./internal/core/corpus/corpus.json", "output path, - for stdout")
	pretty := flag.Bool("pretty", true, "indent the JSON")
	flag.Parse()

	if err := run(strings.TrimSpace(*root), *out, *pretty); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
