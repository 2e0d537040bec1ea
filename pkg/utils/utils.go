// Package utils holds small helpers shared across covcompare.
package utils

import (
	"crypto/md5"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

const (
	namespaceSeparator    = "."
	emptyTagName          = "-"
	jsonTagName           = "json"
	requiredTagName       = "required"
	requiredUnlessTagName = "required_unless"
)

// FieldError is a single failed validation rule, translated to English.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// ComputeChecksum returns the md5 hash of data, used to identify artifacts in logs.
func ComputeChecksum(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	uuidV4 := uuid.New() // panics on error
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, uuidV4.String())
}

// configureValidator configure the struct validator
func configureValidator(validate *validator.Validate, trans ut.Translator) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// nolint: gomnd
		name := strings.SplitN(fld.Tag.Get(jsonTagName), ",", 2)[0]
		if name == emptyTagName || name == "" {
			return fld.Name
		}
		return name
	})

	for _, tag := range []string{requiredTagName, requiredUnlessTagName} {
		tag := tag
		// nolint: errcheck
		validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, "{0} field is required!", true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldName(fe))
			return t
		})
	}
}

func fieldName(fe validator.FieldError) string {
	i := strings.Index(fe.Namespace(), namespaceSeparator)
	return fe.Namespace()[i+1:]
}

// GetValidator returns a validator that names fields by their json tag and
// an English translator for its errors.
func GetValidator() (*validator.Validate, ut.Translator, error) {
	enObj := en.New()
	uni := ut.New(enObj, enObj)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}
	configureValidator(validate, trans)
	return validate, trans, nil
}

// ValidateStruct validates s and returns every failed rule. The error is only
// set when s can not be validated at all.
func ValidateStruct(s interface{}) ([]FieldError, error) {
	validate, trans, err := GetValidator()
	if err != nil {
		return nil, err
	}
	validateErr := validate.Struct(s)
	if validateErr == nil {
		return nil, nil
	}
	validationErrs, ok := validateErr.(validator.ValidationErrors)
	if !ok {
		return nil, validateErr
	}
	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		// can translate each error one at a time.
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fieldName(e),
			Tag:     e.Tag(),
			Message: e.Translate(trans),
		})
	}
	return fieldErrs, nil
}
