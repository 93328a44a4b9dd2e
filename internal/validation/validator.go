package validation

import (
	"fmt"
	"strings"

	"github.com/annakov/streetstore/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("tg_username", validateTelegramUsername)
}

// ValidateOrder checks an incoming order request against the boundary rules:
// non-empty product name, positive price, known size, well-formed telegram
// username.
func ValidateOrder(order *models.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	if err := validate.Struct(order); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// validateTelegramUsername permits latin letters, digits and underscore.
func validateTelegramUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}

	for _, c := range username {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		var message string

		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s: field is required", e.Field())
		case "min":
			message = fmt.Sprintf("%s: minimum length is %s characters", e.Field(), e.Param())
		case "max":
			message = fmt.Sprintf("%s: maximum length is %s characters", e.Field(), e.Param())
		case "gt":
			message = fmt.Sprintf("%s: must be greater than %s", e.Field(), e.Param())
		case "oneof":
			message = fmt.Sprintf("%s: must be one of: %s", e.Field(), e.Param())
		case "tg_username":
			message = fmt.Sprintf("%s: only latin letters, digits and underscore are allowed", e.Field())
		default:
			message = fmt.Sprintf("%s: failed rule '%s'", e.Field(), e.Tag())
		}

		messages = append(messages, message)
	}

	return fmt.Errorf("invalid order data: %s", strings.Join(messages, "; "))
}
