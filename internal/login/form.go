package login

import (
	"errors"
	"maps"
)

var (
	ErrInvalid = errors.New("login: form is not valid")
	ErrBusy    = errors.New("login: submission already in progress")
)

// Form tracks values, per-field validation and touched state, and whether a
// submission is in flight.
type Form struct {
	values  Values
	errors  Errors
	touched map[Field]bool
	loading bool
}

// NewForm returns an empty form. Empty values are already invalid, but no
// error is visible until a field is touched.
func NewForm() *Form {
	f := &Form{touched: map[Field]bool{}}
	f.errors = Validate(f.values)
	return f
}

func (f *Form) Values() Values { return f.values }

// Set updates one field and re-validates the form.
func (f *Form) Set(field Field, s string) {
	f.values = f.values.With(field, s)
	f.errors = Validate(f.values)
}

// Blur marks field as touched.
func (f *Form) Blur(field Field) {
	f.touched[field] = true
}

func (f *Form) Touched(field Field) bool { return f.touched[field] }

// Errors returns a copy of the current validation errors.
func (f *Form) Errors() Errors {
	return maps.Clone(f.errors)
}

// VisibleError returns the message to render under field. Errors stay
// hidden until the field has been touched.
func (f *Form) VisibleError(field Field) (string, bool) {
	if !f.touched[field] {
		return "", false
	}
	msg, ok := f.errors[field]
	return msg, ok
}

func (f *Form) IsValid() bool { return len(f.errors) == 0 }

func (f *Form) Loading() bool { return f.loading }

// SubmitDisabled mirrors the submit control: !IsValid || Loading.
func (f *Form) SubmitDisabled() bool {
	return !f.IsValid() || f.loading
}

// Begin starts a submission and returns the values to send.
func (f *Form) Begin() (Values, error) {
	if f.loading {
		return Values{}, ErrBusy
	}
	if !f.IsValid() {
		return Values{}, ErrInvalid
	}
	f.loading = true
	return f.values, nil
}

// Finish ends the in-flight submission. A successful result clears the form;
// a failed one keeps the values so the user can retry.
func (f *Form) Finish(err error) {
	f.loading = false
	if err == nil {
		f.Reset()
	}
}

// Reset clears values and touched state. The loading flag is left alone.
func (f *Form) Reset() {
	f.values = Values{}
	clear(f.touched)
	f.errors = Validate(f.values)
}
