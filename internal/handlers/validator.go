package handlers

import (
	"finease-server/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared validator
// instance with the domain rules registered.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// validationFieldErrors converts validator failures into per-field messages
// for the standardized 400 response body.
func validationFieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = "Invalid request payload"
		return fieldErrors
	}

	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = fieldErrorMessage(fieldErr)
	}

	return fieldErrors
}

func fieldErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "transaction_type":
		return "Transaction type must be Income or Expense"
	case "transaction_amount":
		return "Amount must be a non-negative number"
	case "calendar_date":
		return "Date must be a valid calendar date (YYYY-MM-DD)"
	case "min":
		return "Value is below the allowed minimum"
	case "max":
		return "Value exceeds the allowed maximum"
	default:
		return "Invalid value"
	}
}
