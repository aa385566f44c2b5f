// Package validation checks customer-submitted forms.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"alsayed-store/internal/i18n"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

// CheckoutForm is the shipping and payment form submitted at checkout.
type CheckoutForm struct {
	FirstName     string `json:"firstName" validate:"min=2,max=50"`
	LastName      string `json:"lastName" validate:"min=2,max=50"`
	Email         string `json:"email" validate:"max=255,email"`
	Phone         string `json:"phone" validate:"min=8,max=20,phone"`
	Address       string `json:"address" validate:"min=10,max=500"`
	City          string `json:"city" validate:"min=2,max=100"`
	Country       string `json:"country" validate:"min=2,max=3"`
	Notes         string `json:"notes" validate:"max=1000"`
	PaymentMethod string `json:"paymentMethod" validate:"oneof=cod bank"`
}

// Normalize trims surrounding whitespace from every field.
func (f *CheckoutForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.Country = strings.ToUpper(strings.TrimSpace(f.Country))
	f.Notes = strings.TrimSpace(f.Notes)
	f.PaymentMethod = strings.ToLower(strings.TrimSpace(f.PaymentMethod))
}

// FullName joins first and last name.
func (f *CheckoutForm) FullName() string {
	return f.FirstName + " " + f.LastName
}

// FieldError is a single failed rule. Key is the translation key of its message.
type FieldError struct {
	Field string
	Rule  string
	Key   string
}

// Errors lists every failed field of a form.
type Errors []FieldError

func (e Errors) Error() string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Messages returns one localised message per failed field.
func (e Errors) Messages(tr *i18n.Translator, lang i18n.Lang) map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = tr.T(lang, fe.Key)
		}
	}
	return out
}

// Validator validates forms.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the storefront's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// phone: optional leading +, then digits, spaces, dashes and parentheses
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Checkout normalises form in place and validates it. The returned error is
// of type Errors when fields are invalid.
func (v *Validator) Checkout(form *CheckoutForm) error {
	form.Normalize()

	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Key:   messageKey(fe.Field(), fe.Tag()),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func messageKey(field, rule string) string {
	if field == "paymentMethod" {
		return "validation.paymentMethod"
	}
	return "validation." + field + "." + rule
}
