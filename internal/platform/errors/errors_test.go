package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeStatusAndName(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
		name   string
	}{
		{ErrorCodeUnknown, http.StatusInternalServerError, "unknown"},
		{ErrorCodePanic, http.StatusInternalServerError, "panic"},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity, "invalid_argument"},
		{ErrorCodeValidation, http.StatusBadRequest, "validation"},
		{ErrorCodeJSON, http.StatusBadRequest, "json"},
		{ErrorCodeNotFound, http.StatusNotFound, "not_found"},
		{ErrorCodeMalformedCorpus, http.StatusInternalServerError, "malformed_corpus"},
		{ErrorCodeTranslation, http.StatusBadGateway, "translation"},
		{ErrorCode(999), http.StatusInternalServerError, "unknown"},
	}
	for _, c := range cases {
		if got := c.code.Status(); got != c.status {
			t.Errorf("%d.Status() = %d, want %d", c.code, got, c.status)
		}
		if got := c.code.String(); got != c.name {
			t.Errorf("%d.String() = %q, want %q", c.code, got, c.name)
		}
	}
}

func TestWireCodesAreStable(t *testing.T) {
	// clients match on these numbers
	if ErrorCodeValidation != 5 || ErrorCodeMalformedCorpus != 8 || ErrorCodeTranslation != 9 {
		t.Fatalf("wire codes moved: validation=%d malformed=%d translation=%d",
			ErrorCodeValidation, ErrorCodeMalformedCorpus, ErrorCodeTranslation)
	}
}

func TestErrorMessageAndChain(t *testing.T) {
	cause := stderrs.New("connection reset")
	err := Wrapf(cause, ErrorCodeTranslation, "translate %s", "jp")

	if got := err.Error(); got != "translate jp: connection reset" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrs.Is(err, cause) || stderrs.Unwrap(err) != cause {
		t.Fatalf("cause not reachable through the chain")
	}

	outer := fmt.Errorf("draw: %w", err)
	e, ok := As(outer)
	if !ok || e.Code() != ErrorCodeTranslation {
		t.Fatalf("As through fmt wrap: ok=%v e=%v", ok, e)
	}
	if HTTPStatus(outer) != http.StatusBadGateway {
		t.Fatalf("HTTPStatus = %d", HTTPStatus(outer))
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil receiver")
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	base := New(ErrorCodeValidation, "gender must be at most 16")
	withF := WithField(base, "gender")

	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("base mutated: %q", e.Field())
	}
	if e, _ := As(withF); e.Field() != "gender" {
		t.Fatalf("field = %q", e.Field())
	}

	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatalf("foreign errors pass through unchanged")
	}
}

func TestWireFromAndHTTP(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
	if st, w := HTTP(nil); st != http.StatusOK || w != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", st, w)
	}

	// the cause stays out of the wire message
	err := WithField(Wrap(stderrs.New("secret upstream detail"), ErrorCodeTranslation, "translate failed"), "target")
	st, w := HTTP(err)
	if st != http.StatusBadGateway || w.Code != ErrorCodeTranslation || w.Message != "translate failed" || w.Field != "target" {
		t.Fatalf("HTTP = %d %+v", st, w)
	}

	w = WireFrom(stderrs.New("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign wire = %+v", w)
	}
}

func TestSugarCodes(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeInvalidArgument: InvalidArgf("bad %d", 1),
		ErrorCodeJSON:            JSONErrf("bad json"),
		ErrorCodePanic:           PanicErrf("panic"),
		ErrorCodeUnavailable:     Unavailablef("down"),
		ErrorCodeTranslation:     Translationf("upstream %d", 502),
	}
	for code, err := range cases {
		if !IsCode(err, code) {
			t.Errorf("%v: got code %v", err, CodeOf(err))
		}
	}
	if CodeOf(stderrs.New("x")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors are unknown")
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{stderrs.New("plain"), false},
		{Unavailablef("down"), true},
		{New(ErrorCodeTooManyRequests, "slow down"), true},
		{Translationf("bad gateway"), false},
		{InvalidArgf("bad"), false},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), true},
		{Wrap(context.Canceled, ErrorCodeUnavailable, "gone"), false},
	}
	for i, c := range cases {
		if got := Retryable(c.err); got != c.want {
			t.Fatalf("case %d: Retryable(%v) = %v, want %v", i, c.err, got, c.want)
		}
	}
}
