package module

import (
	"namejar/internal/modkit/swaggerkit"
	namessvc "namejar/internal/services/names/service"
)

// docMutator stamps the configured count bounds onto the draw endpoints
func docMutator(o namessvc.Options) swaggerkit.SpecMutator {
	bounds := func(schema map[string]any) {
		if schema == nil {
			return
		}
		schema["minimum"] = 1
		schema["maximum"] = o.MaxCount
		schema["default"] = o.DefaultCount
	}
	return func(spec map[string]any) {
		if in := swaggerkit.Schema(spec, "DrawInput"); in != nil {
			props, _ := in["properties"].(map[string]any)
			count, _ := props["count"].(map[string]any)
			bounds(count)
		}
		if op := swaggerkit.Operation(spec, "/names/draw", "get"); op != nil {
			params, _ := op["parameters"].([]any)
			for _, p := range params {
				if pm, ok := p.(map[string]any); ok && pm["name"] == "count" {
					schema, _ := pm["schema"].(map[string]any)
					bounds(schema)
				}
			}
		}
	}
}
