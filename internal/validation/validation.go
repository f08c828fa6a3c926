// Package validation turns binding and struct validation failures into
// field-level messages. Rules live in `binding` struct tags, shared with gin.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var ErrValidation = errors.New("validation failed")

// Error carries one message per offending field. It matches ErrValidation
// under errors.Is.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

var (
	setupOnce sync.Once
	trans     ut.Translator
)

// Setup registers English translations and JSON field names on gin's
// validator engine. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerDatetimeTranslation(v)
	})
}

func registerDatetimeTranslation(v *validator.Validate) {
	_ = v.RegisterTranslation("datetime", trans,
		func(ut ut.Translator) error {
			return ut.Add("datetime", "{0} must match the format {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("datetime", fe.Field(), datetimeLabel(fe.Param()))
			return msg
		},
	)
}

func datetimeLabel(layout string) string {
	switch layout {
	case "2006-01-02":
		return "YYYY-MM-DD"
	case "15:04":
		return "HH:MM"
	default:
		return layout
	}
}

// Validate checks s against its binding tags and returns nil or *Error.
func Validate(s any) error {
	Setup()
	if err := binding.Validator.ValidateStruct(s); err != nil {
		return FromBinding(err)
	}
	return nil
}

// FromBinding converts an error returned by gin's ShouldBind family, or by
// Validate, into *Error.
func FromBinding(err error) *Error {
	Setup()
	fields := make(map[string]string)

	var ve validator.ValidationErrors
	var ute *json.UnmarshalTypeError
	var se *json.SyntaxError
	var ne *strconv.NumError
	switch {
	case errors.As(err, &ve):
		for _, fe := range ve {
			if trans != nil {
				fields[fe.Field()] = fe.Translate(trans)
			} else {
				fields[fe.Field()] = fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
			}
		}
	case errors.As(err, &ute):
		name := ute.Field
		if name == "" {
			name = "detail"
		}
		fields[name] = fmt.Sprintf("%s must be %s", name, kindLabel(ute.Type))
	case errors.As(err, &ne):
		fields["detail"] = fmt.Sprintf("%q is not a valid number", ne.Num)
	case errors.As(err, &se):
		fields["detail"] = "malformed JSON: " + se.Error()
	default:
		fields["detail"] = err.Error()
	}

	return &Error{Fields: fields}
}

func kindLabel(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	default:
		return "a " + t.String()
	}
}
