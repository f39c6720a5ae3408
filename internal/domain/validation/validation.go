// Package validation runs struct tag rules and turns failures into domain messages.
//
// Rules live in `validate` tags. A `msg` tag maps rule names to the message
// reported when that rule fails, e.g. `msg:"required=A tour must have a name"`.
// The placeholder {VALUE} is replaced with the rejected value.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator instance. Field names resolve to json names.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}

			return name
		})
	})

	return instance
}

// Struct validates v and returns a *domainerrors.ValidationError or nil.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	verr := domainerrors.NewValidationError()
	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(typ, fe))
	}

	return verr.ErrOrNil()
}

func message(typ reflect.Type, fe validator.FieldError) string {
	if field, ok := lookupField(typ, fe.StructNamespace()); ok {
		if msg, found := ParseMessages(field.Tag.Get("msg"))[fe.Tag()]; found {
			return strings.ReplaceAll(msg, "{VALUE}", fmt.Sprint(fe.Value()))
		}
	}

	return defaultMessage(fe)
}

// lookupField walks a namespace like "Tour.StartLocation.Address" from typ.
func lookupField(typ reflect.Type, namespace string) (reflect.StructField, bool) {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}

	var field reflect.StructField
	current := typ
	for _, part := range parts[1:] {
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			part = part[:idx]
		}
		for current.Kind() == reflect.Pointer || current.Kind() == reflect.Slice || current.Kind() == reflect.Array {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		f, ok := current.FieldByName(part)
		if !ok {
			return reflect.StructField{}, false
		}
		field = f
		current = f.Type
	}

	return field, true
}

// ParseMessages splits a msg tag into rule -> message pairs.
func ParseMessages(tag string) map[string]string {
	out := make(map[string]string)
	if tag == "" {
		return out
	}
	for _, pair := range strings.Split(tag, ";") {
		rule, msg, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(rule)] = msg
	}

	return out
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

// All validates each value and merges the failures into one ValidationError.
func All(values ...any) error {
	merged := domainerrors.NewValidationError()
	for _, v := range values {
		err := Struct(v)
		if err == nil {
			continue
		}

		var verr *domainerrors.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		merged.Merge(verr)
	}

	return merged.ErrOrNil()
}
