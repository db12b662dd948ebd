// Package validation wraps go-playground/validator with the Spanish
// translations and custom tags used by the application's forms.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/apperror"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var overrides = map[string]string{
	"required": "Este campo es obligatorio.",
	"email":    "Ingresa un correo electrónico válido.",
	"eqfield":  "Las contraseñas no coinciden.",
}

// Validator validates form DTOs and reports errors keyed by form field name.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator builds a Validator with Spanish messages and the password
// policy tags.
func NewValidator() (*Validator, error) {
	locale := es.New()
	uni := ut.New(locale, locale)
	trans, ok := uni.GetTranslator("es")
	if !ok {
		return nil, errors.New("validation: traductor \"es\" no disponible")
	}

	validate := validator.New()
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("validation: traducciones por defecto: %w", err)
	}

	// Report errors under the HTML form field name instead of the Go name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{validate: validate, trans: trans}
	if err := v.registrarReglas(reglasPassword); err != nil {
		return nil, err
	}
	for tag, text := range overrides {
		if err := v.registerTranslation(tag, text, true); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// MustNew is NewValidator for process startup; it panics on error.
func MustNew() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) registrarReglas(reglas []reglaPassword) error {
	for _, regla := range reglas {
		cumple := regla.cumple
		err := v.validate.RegisterValidation(regla.tag, func(fl validator.FieldLevel) bool {
			return cumple(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("validation: regla %q: %w", regla.tag, err)
		}
		if err := v.registerTranslation(regla.tag, regla.err.Error(), false); err != nil {
			return err
		}
	}
	return nil
}

// Struct validates s. It returns nil when s is valid.
func (v *Validator) Struct(s any) *apperror.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidation(map[string]string{"": err.Error()})
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, ok := fields[fe.Field()]; ok {
			continue
		}
		fields[fe.Field()] = fe.Translate(v.trans)
	}
	return apperror.NewValidation(fields)
}

func (v *Validator) registerTranslation(tag, text string, override bool) error {
	err := v.validate.RegisterTranslation(
		tag, v.trans,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
	if err != nil {
		return fmt.Errorf("validation: traducción %q: %w", tag, err)
	}
	return nil
}
