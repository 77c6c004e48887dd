// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
//
// openapi.json is written by hand and is the source of truth for the API
// docs; the swagger:route lines on handlers only name the operation they serve.
// The api package tests fail when a mounted route is missing from it.
package swaggerkit

import (
	"net/http"

	phttp "namejar/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool, mutators ...SpecMutator) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(mutators...))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
