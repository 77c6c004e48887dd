// Package bind decodes and validates request payloads into project errors
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "namejar/internal/platform/errors"
	"namejar/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/text/language"
)

// MaxBody caps request bodies
const MaxBody = 64 << 10

var (
	once  sync.Once
	valid *validator.Validate
	trans ut.Translator
)

func setup() {
	once.Do(func() {
		loc := en.New()
		trans, _ = ut.New(loc, loc).GetTranslator("en")

		valid = validator.New(validator.WithRequiredStructEnabled())
		// messages name the json field, not the Go one
		valid.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(valid, trans)

		message(valid, "min", "{0} must be at least {1}")
		message(valid, "max", "{0} must be at most {1}")

		_ = valid.RegisterValidation("langtag", langTag)
		message(valid, "langtag", "{0} must be a language tag like en or ja-JP")
	})
}

// langTag accepts any well formed BCP-47 tag, unknown subtags included
// "jp" is not a registered language but it is a corpus name
func langTag(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	if err == nil {
		return true
	}
	var ve language.ValueError
	return errors.As(err, &ve)
}

func message(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ParseJSON decodes the body into T and validates it
// Unknown fields and trailing data are rejected, an empty body is the zero T
func ParseJSON[T any](r *http.Request) (T, error) {
	var in T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("closing request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, Validate(in)
		}
		return in, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return in, perr.JSONErrf("unexpected trailing data")
	}
	return in, Validate(in)
}

// Validate runs struct validation, the first failing field is reported
// Handlers that bind from the query string call it directly
func Validate(v any) error {
	setup()
	err := valid.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		logger.Get().Error().Err(err).Msg("validator misuse")
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validation error")
	}
	fe := verrs[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(trans)), fe.Field())
}
