package usersetting

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// definition carries the required inputs through the validator. A pointer that
// is set passes "required" even when it points to a zero value.
type definition struct {
	Key          string     `col:"key"          validate:"required"`
	DefaultValue *string    `col:"defaultValue" validate:"required"`
	ValueType    *ValueType `col:"valueType"    validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("col")
	})

	return v
}

// Validate checks the required fields of a setting.
func Validate(key string, opts Options) error {
	err := validate.Struct(definition{
		Key:          key,
		DefaultValue: opts.DefaultValue,
		ValueType:    opts.ValueType,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err //nolint:wrapcheck
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}

	return &ValidationError{Key: key, Fields: fields}
}
