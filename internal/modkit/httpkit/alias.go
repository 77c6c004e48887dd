// Package httpkit provides handler and routing helpers over the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import phttp "namejar/internal/platform/net/http"

type (
	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Response lets a handler pick its own status or headers
	Response = phttp.Response
)
