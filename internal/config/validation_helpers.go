package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// convertValidationError normalizes validator errors into shapekit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return shapeerrors.NewValidationError(field, msg, err)
	}

	return shapeerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name, e.g. "components[0].selector".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}

func fieldForCategory(name string) string {
	return fmt.Sprintf("categories.%s", name)
}
