// Package validation wraps go-playground/validator with JSON field naming
// and translated error messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// DefaultLang is used when the requested language has no translator.
const DefaultLang = "en"

// Validator validates request DTOs and translates the resulting errors.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
}

// New builds a Validator with en and zh translations registered.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	uni := ut.New(en.New(), en.New(), zh.New())

	enTrans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, fmt.Errorf("register en translations: %w", err)
	}
	zhTrans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, zhTrans); err != nil {
		return nil, fmt.Errorf("register zh translations: %w", err)
	}

	return &Validator{validate: validate, uni: uni}, nil
}

// fieldName reports the wire name of a field: its json name, else its form name.
func fieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// Struct validates the exported fields of s against their `validate` tags.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Engine exposes the underlying validator, e.g. to register custom tags.
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Translator returns the translator for lang ("zh", "zh-CN", "en_US", ...),
// falling back to DefaultLang.
func (v *Validator) Translator(lang string) ut.Translator {
	lang = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "-", "_"))
	if trans, found := v.uni.GetTranslator(lang); found && lang != "" {
		return trans
	}
	if base, _, ok := strings.Cut(lang, "_"); ok {
		if trans, found := v.uni.GetTranslator(base); found {
			return trans
		}
	}
	trans, _ := v.uni.GetTranslator(DefaultLang)
	return trans
}

// FormatErrors maps each failing field to a human readable message.
// A nil trans yields the untranslated validator message.
func FormatErrors(err error, trans ut.Translator) map[string]string {
	errorsMap := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}

	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		if trans != nil {
			errorsMap[fieldName] = fieldError.Translate(trans)
			continue
		}
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
	}
	return errorsMap
}
