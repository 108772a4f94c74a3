package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prismline/internal/theme"
	apperrors "github.com/alexisbeaulieu97/prismline/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	chipStyles = map[string]struct{}{"badge": {}, "pipe": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Hidden modes are checked against hidden_modes in ValidateConfig.
		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return theme.IsValid(fl.Field().String(), true)
		})

		_ = v.RegisterValidation("chip_style", func(fl validator.FieldLevel) bool {
			_, ok := chipStyles[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Theme != "" && !cfg.HiddenModes && !theme.IsValid(cfg.Theme, false) {
		return apperrors.NewValidationError("theme",
			fmt.Sprintf("theme %q needs hidden_modes: true", cfg.Theme), nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors
// keyed by their YAML path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace, leaving
// e.g. "repo.timeout_ms".
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
