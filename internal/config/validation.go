package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/vslice-dev/vslice/internal/depmgr"
)

var validate = newValidator()

// newValidator reports fields by their config key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateStruct(cfg)...)
	errs = append(errs, validateInitMode(cfg.InitMode)...)
	errs = append(errs, validateConstraint(cfg.MinPythonVersion)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateStruct applies the struct tag rules.
func validateStruct(cfg *Config) []ValidationError {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "config", Message: err.Error(), Wrapped: ErrInvalidConfig}}
	}

	errs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fieldPath(fe),
			Message: tagMessage(fe),
			Value:   fe.Value(),
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// fieldPath strips the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is empty"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

func validateInitMode(mode string) []ValidationError {
	if mode == "" || depmgr.InitMode(mode).IsValid() {
		return nil
	}
	return []ValidationError{{
		Field:   "init_mode",
		Message: "must be one of: scripted, flags",
		Value:   mode,
		Wrapped: ErrInvalidInitMode,
	}}
}

func validateConstraint(c string) []ValidationError {
	if c == "" {
		return nil
	}
	if _, err := semver.NewConstraint(c); err != nil {
		return []ValidationError{{
			Field:   "min_python_version",
			Message: err.Error(),
			Value:   c,
			Wrapped: ErrInvalidConstraint,
		}}
	}
	return nil
}
