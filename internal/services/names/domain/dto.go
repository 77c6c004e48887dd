// Package domain holds DTOs for the names http and service contracts
package domain

// DrawInput asks for a batch of names
// Pointer fields distinguish "unset" (use the configured default) from zero
type DrawInput struct {
	// Locale is a family tag (zh, en, jp) or any BCP-47 tag; unknown tags use zh
	Locale string `json:"locale,omitempty" validate:"omitempty,max=35,langtag" example:"jp"`
	// Count is clamped to [1, max]
	Count *int `json:"count,omitempty" example:"3"`
	// Weights picks frequency-weighted surnames where the corpus has weights
	Weights *bool `json:"weights,omitempty" example:"true"`
	// Gender is male, female or ta (and aliases); anything else is random
	Gender string `json:"gender,omitempty" validate:"omitempty,max=16" example:"female"`
	// Translate annotates each name with a translation into Target
	Translate bool   `json:"translate,omitempty" example:"false"`
	Target    string `json:"target,omitempty" validate:"omitempty,max=35,langtag" example:"en"`
	// Seed makes the draw reproducible
	Seed *uint64 `json:"seed,omitempty" example:"42"`
}

// Translation is the outcome for one drawn name
type Translation struct {
	Original   string `json:"original" example:"田中 太郎"`
	Translated string `json:"translated,omitempty" example:"Taro Tanaka"`
	Error      string `json:"error,omitempty"`
}

// DrawResult is one batch
type DrawResult struct {
	BatchID string `json:"batch_id" example:"5b0f3c8e-8d0e-4d7a-9b7e-0d6f3f0c2b1a"`
	Locale  string `json:"locale" example:"jp"`
	// Names are the rendered names in draw order
	Names []string `json:"names" example:"田中 太郎"`
	// Text is the display line: the single name, or all names joined by the separator
	// When translations ran each entry is rendered through the display template
	Text         string        `json:"text" example:"田中 太郎、佐藤 花子"`
	Fallbacks    int           `json:"fallbacks" example:"0"`
	Translations []Translation `json:"translations,omitempty"`
}

// LocaleInfo describes one loaded corpus
type LocaleInfo struct {
	Locale     string         `json:"locale" example:"zh"`
	Pool       string         `json:"pool" example:"weighted"`
	Surnames   int            `json:"surnames" example:"44"`
	GivenNames map[string]int `json:"given_names"`
	Default    bool           `json:"default" example:"true"`
}
