package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Draw(ctx context.Context, in DrawInput) (DrawResult, error)
	Locales(ctx context.Context) ([]LocaleInfo, error)
}

// Translator renders input in the target language
// Implementations live in adapters; the service works without one
type Translator interface {
	Translate(ctx context.Context, input, target string) (string, error)
}
