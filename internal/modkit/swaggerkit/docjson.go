package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"namejar/internal/platform/config"
)

// openapiDoc is maintained by hand next to the handlers it describes
//
//go:embed openapi.json
var openapiDoc string

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

// docReader is a seam for tests
var docReader = func() string { return openapiDoc }

// serveDocJSON serves the spec with runtime tweaks applied, nil mutators are skipped
// CORE_API_DOCS_SERVER overrides the server url, CORE_API_DOCS_TITLE_SUFFIX tags the title
func serveDocJSON(mutators ...SpecMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		cfg := config.New().Prefix("CORE_API_")
		spec["servers"] = []any{map[string]any{"url": cfg.MayString("DOCS_SERVER", "/api/v1")}}
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				title, _ := info["title"].(string)
				info["title"] = title + " " + v
			}
		}

		eachResponses(spec, func(resps map[string]any) {
			if _, ok := resps["500"]; !ok {
				resps["500"] = internalError
			}
		})

		for _, m := range mutators {
			if m != nil {
				m(spec)
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// internalError is what RecoverJSON and unmapped errors put on the wire
var internalError = map[string]any{
	"description": "Internal Server Error",
	"content": map[string]any{
		"application/json": map[string]any{
			"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": map[string]any{
				"status_code": 500,
				"status":      "Internal Server Error",
				"code":        1,
				"error":       "panic recovered",
				"request_id":  "579f33bf50b1/abc-000001",
			},
		},
	},
}

// Operation returns the operation object for method on path, nil when absent
func Operation(spec map[string]any, path, method string) map[string]any {
	paths, _ := spec["paths"].(map[string]any)
	p, _ := paths[path].(map[string]any)
	op, _ := p[method].(map[string]any)
	return op
}

// Schema returns a named component schema, nil when absent
func Schema(spec map[string]any, name string) map[string]any {
	comps, _ := spec["components"].(map[string]any)
	schemas, _ := comps["schemas"].(map[string]any)
	s, _ := schemas[name].(map[string]any)
	return s
}

// eachResponses calls fn with the responses map of every operation, creating it when absent
func eachResponses(spec map[string]any, fn func(map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		ops, _ := p.(map[string]any)
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			fn(resps)
		}
	}
}
