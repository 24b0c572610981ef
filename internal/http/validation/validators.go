// Package validation checks submitted form values and reports per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty and does not exceed maxLen characters.
// Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// OneOf validates that a field matches one of the provided options (case-insensitive).
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.ToUpper(strings.TrimSpace(v))
		for _, opt := range options {
			if v == strings.ToUpper(opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// Pattern validates that a field matches the provided regular expression.
func Pattern(fieldName string, re *regexp.Regexp) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if !re.MatchString(v) {
			return fieldName + " has an invalid format."
		}
		return ""
	}
}

// Optional validates that an optional field does not exceed maxLen characters if provided.
// Uses rune count for proper Unicode support.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	if _, done := fv.errors[field]; done {
		return fv
	}
	for _, v := range validators {
		if err := v(value); err != "" {
			fv.errors[field] = err
			break // Stop at first error per field
		}
	}
	return fv
}

// Add records msg for field unless the field already has an error.
func (fv *FieldValidator) Add(field, msg string) *FieldValidator {
	if _, done := fv.errors[field]; !done && msg != "" {
		fv.errors[field] = msg
	}
	return fv
}

// Struct runs the `validate` tags of form and records the first failure per field.
func (fv *FieldValidator) Struct(form any) *FieldValidator {
	for field, msg := range Struct(form) {
		fv.Add(field, msg)
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

var (
	hhmmPattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\-. ]{8,20}$`)
)

// Engine returns the shared validator with the academy tags registered.
// Field names in errors come from the `form` tag so they match the inputs.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "cpf", func(fl validator.FieldLevel) bool { return ValidCPF(fl.Field().String()) })
		mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
			return hhmmPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", strings.TrimSpace(fl.Field().String()))
			return err == nil
		})
		engine = v
	})
	return engine
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Struct validates form and maps each failing field to a readable message.
// It returns nil when the form is valid.
func Struct(form any) map[string]string {
	err := Engine().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, done := out[fe.Field()]; done {
			continue
		}
		out[fe.Field()] = Message(fe)
	}
	return out
}

// Message renders one validator failure for people.
func Message(fe validator.FieldError) string {
	label := Label(fe.Field())
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return label + " is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "cpf":
		return "Enter a valid CPF (11 digits)."
	case "phone":
		return "Enter a valid phone number."
	case "hhmm":
		return label + " must be a time like 18:30."
	case "isodate":
		return label + " must be a valid date."
	default:
		return label + " has an invalid value."
	}
}

//nolint:gochecknoglobals // read-only label lookup
var labels = map[string]string{
	"nome":           "Name",
	"email":          "Email",
	"cpf":            "CPF",
	"telefone":       "Phone",
	"dataNascimento": "Birth date",
	"status":         "Status",
	"faixa":          "Belt",
	"grau":           "Degree",
	"responsavelId":  "Guardian",
	"parentesco":     "Relationship",
	"modalidade":     "Modality",
	"capacidade":     "Capacity",
	"instrutor":      "Instructor",
	"horario":        "Schedule",
	"turmaId":        "Group",
	"data":           "Date",
	"horaInicio":     "Start time",
	"horaFim":        "End time",
	"descricao":      "Description",
	"alunoId":        "Student",
	"dataInscricao":  "Enrollment date",
	"perfil":         "Profile",
	"senha":          "Password",
	"logradouro":     "Street",
	"cidade":         "City",
	"estado":         "State",
	"cep":            "Postal code",
}

// Label returns the display name of a form field.
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// ValidCPF reports whether s holds exactly eleven digits, ignoring the usual punctuation.
// Check digits are left to the API.
func ValidCPF(s string) bool {
	n := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			n++
		case r == '.' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return n == 11
}
