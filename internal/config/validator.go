package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern       = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	categoryNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	identPattern        = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, key := range []string{"yaml", "json"} {
				name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return strings.ToLower(field.Name)
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("category_name", func(fl validator.FieldLevel) bool {
			return categoryNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_radius", func(fl validator.FieldLevel) bool {
			_, err := shape.ParseRadius(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			dim, err := css.ParseDimension(fl.Field().String())
			return err == nil && !dim.IsPercentage() && dim.Quantity >= 0
		})

		_ = v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
			_, err := regexp.Compile(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("selector", func(fl validator.FieldLevel) bool {
			sel := strings.TrimSpace(fl.Field().String())
			return sel != "" && !strings.ContainsAny(sel, "{};")
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateStruct runs the shared validator against any tagged struct and
// converts the first failure into a ValidationError.
func ValidateStruct(value any) error {
	return convertValidationError(validatorInstance().Struct(value))
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return shapeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Categories))
	for _, category := range cfg.Categories {
		if _, exists := seen[category.Name]; exists {
			return shapeerrors.NewValidationError(fieldForCategory(category.Name), fmt.Sprintf("duplicate category %q", category.Name), nil)
		}
		seen[category.Name] = struct{}{}

		if category.CustomProperty == "" {
			continue
		}
		radius, err := shape.ParseRadius(category.Radius)
		if err != nil {
			return shapeerrors.NewValidationError(fieldForCategory(category.Name)+".radius", err.Error(), err)
		}
		if radius.Len() > 1 {
			return shapeerrors.NewValidationError(fieldForCategory(category.Name)+".custom_property",
				fmt.Sprintf("custom_property needs a single radius value, got %q", category.Radius),
				shapeerrors.ErrUnsupportedRadius)
		}
	}

	for i, component := range cfg.Components {
		if component.Mask == nil {
			continue
		}
		if err := shape.Mask(component.Mask).Validate(); err != nil {
			return shapeerrors.NewValidationError(fieldForComponent(i, "mask"), err.Error(), err)
		}
	}

	return nil
}
