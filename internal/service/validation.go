package service

import (
	"errors"
	"fmt"

	apperrors "maintenance-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs a request through the validator and converts rule
// failures into typed validation errors so handlers answer 400.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	first := verrs[0]
	return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the '%s' rule", first.Tag()))
}
