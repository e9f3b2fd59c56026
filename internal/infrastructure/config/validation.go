package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	attrNamePattern  = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)
	attrTokenPattern = regexp.MustCompile(`^[^\s"'<>]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their config key rather than the Go field name.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return attrNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("attr_token", func(fl validator.FieldLevel) bool {
			return attrTokenPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validateConfig performs struct tag validation plus the cross-field checks.
func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}

	var validationErrors []string

	if err := validatorInstance().Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("config validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			validationErrors = append(validationErrors, describeFieldError(fe))
		}
	}

	validationErrors = append(validationErrors, validateToggles(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateToggles(config *Config) []string {
	if config.Toggles.Class == "" && config.Toggles.ID == "" {
		return []string{"toggles.class and toggles.id cannot both be empty"}
	}
	return nil
}

// describeFieldError turns a validator error into "section.key message".
func describeFieldError(fe validator.FieldError) string {
	key := fe.Namespace()
	if idx := strings.Index(key, "."); idx >= 0 {
		key = key[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", key)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", key, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be non-negative", key)
	case "attr_name":
		return fmt.Sprintf("%s must be a valid attribute name, got %q", key, fe.Value())
	case "attr_token":
		return fmt.Sprintf("%s must not contain whitespace, quotes or angle brackets, got %q", key, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}
