package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"namejar/internal/core/namegen"
)

// CoreFile holds pack version and meta inside a fragment directory
const CoreFile = "core.json"

// LoadDir assembles a pack from a fragment directory
//
//	<root>/core.json          optional {"version": 1, "meta": {...}}
//	<root>/<locale>.json      {"surname": ..., "name": {...}}
//	<root>/<locale>.yaml|.yml
//	<root>/<locale>.toml
//
// A fragment may name its locale with a "locale" key, otherwise the file stem
// is used. Only the top level is read, subdirectories are ignored
func LoadDir(root string) (*Pack, error) {
	return LoadFS(os.DirFS(root))
}

// LoadFS is LoadDir over any fs.FS
func LoadFS(fsys fs.FS) (*Pack, error) {
	p := newPack()

	if b, err := fs.ReadFile(fsys, CoreFile); err == nil {
		doc, err := decodeRaw(b, FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("corpus: %s: %w", CoreFile, err)
		}
		if v, ok := toFloat(doc["version"]); ok && int(v) != PackVersion {
			return nil, fmt.Errorf("corpus: %s version %v (want %d)", CoreFile, v, PackVersion)
		}
		p.Meta, _ = doc["meta"].(map[string]any)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("corpus: read %s: %w", CoreFile, err)
	}

	ents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("corpus: read dir: %w", err)
	}
	var files []string
	for _, e := range ents {
		if e.IsDir() || e.Name() == CoreFile {
			continue
		}
		if _, ok := FormatOf(e.Name()); ok {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("corpus: no fragment files found: %w", namegen.ErrMalformedCorpus)
	}

	for _, name := range files { // ReadDir sorts by name
		f, _ := FormatOf(name)
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", name, err)
		}
		doc, err := decodeRaw(b, f)
		if err != nil {
			return nil, fmt.Errorf("corpus: %s: %w", name, err)
		}
		tag, _ := doc["locale"].(string)
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag == "" {
			tag = strings.ToLower(strings.TrimSuffix(path.Base(name), path.Ext(name)))
		}
		if err := p.add(tag, doc); err != nil {
			return nil, fmt.Errorf("%w (in %s)", err, name)
		}
	}
	return p, nil
}
