package errors

import "net/http"

// ErrorCode identifies an error class on the wire
// Values are stable for clients; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic
	// ErrorCodeUnavailable is for transient failures where a retry may succeed
	ErrorCodeUnavailable
	// ErrorCodeTooManyRequests is for rate limiting, ours or upstream
	ErrorCodeTooManyRequests
	// ErrorCodeInvalidArgument is for bad call arguments
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is for request fields that fail validation
	ErrorCodeValidation
	// ErrorCodeJSON is for request bodies that do not decode
	ErrorCodeJSON
	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound
	// ErrorCodeMalformedCorpus is for name corpora that cannot produce a draw
	ErrorCodeMalformedCorpus
	// ErrorCodeTranslation is for failures of the upstream translation service
	ErrorCodeTranslation
)

type codeInfo struct {
	name   string
	status int
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeMalformedCorpus: {"malformed_corpus", http.StatusInternalServerError},
	ErrorCodeTranslation:     {"translation", http.StatusBadGateway},
}

// String returns the snake_case name used in logs
func (c ErrorCode) String() string {
	if i, ok := codes[c]; ok {
		return i.name
	}
	return "unknown"
}

// Status maps the code to an HTTP status, 500 for anything unmapped
func (c ErrorCode) Status() int {
	if i, ok := codes[c]; ok {
		return i.status
	}
	return http.StatusInternalServerError
}
