// Package login holds the login form's validation rules and form state.
// It has no UI dependency; the terminal screen drives it.
package login

import (
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Field names a form input.
type Field string

const (
	FieldPhone    Field = "phone"
	FieldPassword Field = "password"
)

// Fields lists form inputs in display order.
var Fields = []Field{FieldPhone, FieldPassword}

const (
	MsgPhoneRequired    = "Phone number is required"
	MsgPhoneFormat      = "Phone must be 9–15 digits, optionally starting with +."
	MsgPasswordRequired = "Password is required."
	MsgPasswordLength   = "Password must be at least 6 characters"

	MinPasswordLen = 6
)

var phonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)

// Values are the raw form inputs.
type Values struct {
	Phone    string
	Password string
}

// Get returns the value of f.
func (v Values) Get(f Field) string {
	switch f {
	case FieldPhone:
		return v.Phone
	case FieldPassword:
		return v.Password
	}
	return ""
}

// With returns a copy of v with f set to s.
func (v Values) With(f Field, s string) Values {
	switch f {
	case FieldPhone:
		v.Phone = s
	case FieldPassword:
		v.Password = s
	}
	return v
}

// Errors maps a field to the message of its first failing rule.
// Valid fields have no entry.
type Errors map[Field]string

func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// IsValidPhone reports whether s is an optional leading "+" followed by 9 to 15 digits.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidPassword reports whether s is at least MinPasswordLen long, counted
// in UTF-16 code units: characters outside the Basic Multilingual Plane,
// such as most emoji, count as two.
func IsValidPassword(s string) bool {
	return utf16Len(s) >= MinPasswordLen
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Validate checks v against the form rules. Rules run in order per field and
// only the first failure is reported.
func Validate(v Values) Errors {
	errs := Errors{}
	switch {
	case v.Phone == "":
		errs[FieldPhone] = MsgPhoneRequired
	case !IsValidPhone(v.Phone):
		errs[FieldPhone] = MsgPhoneFormat
	}
	switch {
	case v.Password == "":
		errs[FieldPassword] = MsgPasswordRequired
	case !IsValidPassword(v.Password):
		errs[FieldPassword] = MsgPasswordLength
	}
	return errs
}

// MaskPhone keeps the last three characters of a phone number.
func MaskPhone(phone string) string {
	n := utf8.RuneCountInString(phone)
	if n <= 3 {
		return strings.Repeat("*", n)
	}
	r := []rune(phone)
	return strings.Repeat("*", n-3) + string(r[n-3:])
}
