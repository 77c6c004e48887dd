// Package module holds the contract API modules satisfy and port lookups across them
package module

import (
	phttp "namejar/internal/platform/net/http"
)

// Module is what the API composes, it lives apart from modkit so modules can export ports without import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
