package domain

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	phoneDigits = 10

	msgPhoneTooShort = "Phone number must have 10 digits (e.g., 714-270-8047)"
	msgPhoneTooLong  = "Phone number has too many digits. Expected format: 714-270-8047"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func phoneDigitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone strips every non-digit and formats the remainder progressively
// as NNN, NNN-NNN or NNN-NNN-NNNN. Digits past the tenth are dropped.
func FormatPhone(s string) string {
	d := phoneDigitsOf(s)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "-" + d[3:]
	case len(d) <= phoneDigits:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	default:
		return d[:3] + "-" + d[3:6] + "-" + d[6:phoneDigits]
	}
}

// ValidatePhone accepts an input without digits (phone is optional) or one
// with exactly ten digits.
func ValidatePhone(s string) error {
	n := len(phoneDigitsOf(s))
	switch {
	case n == 0:
		return nil
	case n < phoneDigits:
		return errors.New(msgPhoneTooShort)
	case n > phoneDigits:
		return errors.New(msgPhoneTooLong)
	}
	return nil
}

// ValidateEmail checks the loose address shape used across the product.
func ValidateEmail(s string) error {
	if !emailRe.MatchString(s) {
		return errors.New("must be a valid email address")
	}
	return nil
}

// ValidateURL requires an absolute URL with scheme and host.
func ValidateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be a valid URL")
	}
	return nil
}

// ValidatePasswordStrength returns the first unmet password requirement.
func ValidatePasswordStrength(p string) error {
	if len(p) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !lower {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !digit {
		return errors.New("Password must contain at least one number")
	}
	return nil
}

// ozzo-validation rules wrapping the helpers above. Empty strings pass; pair
// them with validation.Required where a value is mandatory.
var (
	PhoneRule = stringRule(ValidatePhone)
	EmailRule = stringRule(ValidateEmail)
	URLRule   = stringRule(ValidateURL)
)

func stringRule(check func(string) error) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return check(s)
	})
}

// FromRules converts an ozzo-validation result into a *ValidationError with
// one FieldError per failing key. Internal rule errors are returned unchanged.
func FromRules(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return NewValidationError("input", err.Error())
	}

	fields := make([]FieldError, 0, len(errs))
	for field, fe := range errs {
		if fe == nil {
			continue
		}
		fields = append(fields, FieldError{Field: field, Message: fe.Error()})
	}
	if len(fields) == 0 {
		return nil
	}
	return NewValidationErrors(fields)
}
