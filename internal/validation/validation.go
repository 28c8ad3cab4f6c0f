// Package validation checks request payloads before anything touches storage.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of dates of birth (dd-MM-yyyy).
const DateLayout = "02-01-2006"

// MinimumAge is the youngest age accepted at profile setup.
const MinimumAge = 15

// Now is the clock used by the age gate.
var Now = time.Now

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("minage", func(fl validator.FieldLevel) bool {
		years, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		dob, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return Age(dob, Now()) >= years
	})
	return v
}

// Struct validates s against its `validate` tags and returns an error whose message
// describes the first failing field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.New(message(fieldErrs[0]))
	}
	return err
}

// Var validates a single value against tag.
func Var(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

// IsEmail reports whether s looks like an e-mail address.
func IsEmail(s string) bool { return Var(s, "required,email") }

// IsURL reports whether s is an absolute URL.
func IsURL(s string) bool { return Var(s, "required,url") }

// IsHexColor reports whether s is a 7 character "#rrggbb" color.
func IsHexColor(s string) bool { return Var(s, "required,len=7,hexcolor") }

// ParseDate parses a dd-MM-yyyy date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Age returns the number of full years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank", "required_without_all":
		return fmt.Sprintf("%s cannot be blank", field)
	case "email":
		return "invalid email"
	case "url", "http_url":
		return fmt.Sprintf("invalid %s", field)
	case "hexcolor", "len":
		if field == "color" {
			return "invalid color"
		}
		return fmt.Sprintf("invalid %s length", field)
	case "oneof":
		return fmt.Sprintf("invalid %s", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "date":
		return "invalid date, expected dd-MM-yyyy"
	case "minage":
		return fmt.Sprintf("user should be %s years or older", fe.Param())
	case "nefield":
		return fmt.Sprintf("%s cannot be the same as %s", field, fe.Param())
	default:
		return fmt.Sprintf("invalid %s", field)
	}
}
