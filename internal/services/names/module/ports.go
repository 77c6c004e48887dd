package module

import (
	"namejar/internal/modkit/swaggerkit"
	"namejar/internal/services/names/domain"
)

// Ports is what the names module exposes to other modules and binaries
type Ports struct {
	Names domain.ServicePort
	// Translator is nil when translation is disabled
	Translator domain.Translator
	// Doc documents the configured count bounds in the served OpenAPI spec
	Doc swaggerkit.SpecMutator
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
