package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"loan-amortizer/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateStruct runs the struct tags and folds the failures into one
// ErrInvalidParameter.
func validateStruct(v any) error {
	err := inputValidator().Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", e.Namespace(), e.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must not be less than %s", e.Namespace(), e.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", e.Namespace(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, strings.Join(messages, "; "))
}

func validateLoanInput(input domain.LoanInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	if input.Principal > MaxPrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", domain.ErrInvalidParameter, MaxPrincipal)
	}
	if input.NominalRate > MaxNominalRate || input.InterestOnlyRate > MaxNominalRate {
		return fmt.Errorf("%w: rate exceeds the maximum of %.2f", domain.ErrInvalidParameter, MaxNominalRate)
	}
	if input.Years > MaxYears {
		return fmt.Errorf("%w: years exceed the maximum of %.0f", domain.ErrInvalidParameter, MaxYears)
	}
	return nil
}
