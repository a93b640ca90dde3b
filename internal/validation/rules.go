// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
)

// DateLayout is the calendar date format exchanged with the upstream API.
const DateLayout = "2006-01-02"

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// usPhoneRegex accepts ten digit NANP numbers with any separators
	usPhoneRegex = regexp.MustCompile(`^\D*[2-9](\D*\d\D*){2}\D*[2-9](\D*\d\D*){6}$`)

	zipCodeRegex    = regexp.MustCompile(`^\d{5}$`)
	plateStateRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	yearRegex       = regexp.MustCompile(`^\d{4}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PhoneNumber validates a US phone number, ignoring formatting characters.
var PhoneNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return usPhoneRegex.MatchString(s)
	},
	validation.NewError("validation_phone_number", "must be a valid phone number"),
)

// ZipCode validates a five digit US zip code.
var ZipCode = validation.NewStringRuleWithError(
	func(s string) bool {
		return zipCodeRegex.MatchString(s)
	},
	validation.NewError("validation_zip_code", "must be 5 digits"),
)

// PlateState validates a two letter uppercase state code.
var PlateState = validation.NewStringRuleWithError(
	func(s string) bool {
		return plateStateRegex.MatchString(s)
	},
	validation.NewError("validation_plate_state", "must be 2 uppercase letters"),
)

// Year validates a four digit model year.
var Year = validation.NewStringRuleWithError(
	func(s string) bool {
		return yearRegex.MatchString(s)
	},
	validation.NewError("validation_year", "must be 4 digits"),
)

// Date validates a calendar date. Both YYYY-MM-DD and RFC 3339 timestamps are accepted.
var Date = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := ParseDate(s)
		return err == nil
	},
	validation.NewError("validation_date", "must be a valid date (YYYY-MM-DD)"),
)

// Base64 validates that a string is valid base64-encoded data.
var Base64 = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	},
	validation.NewError("validation_base64", "must be valid base64-encoded data"),
)

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
