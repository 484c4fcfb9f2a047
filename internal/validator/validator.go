package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError - кастомный тип ошибки, содержит
// карту ошибок "поле" -> "сообщение".
type ValidationError struct {
	Errors map[string]string
}

// Error реализует стандартный интерфейс error.
func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator - обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New создает новый экземпляр Validator.
func New() *Validator {
	v := validator.New()

	// Используем JSON-теги в сообщениях об ошибках, чтобы клиент
	// видел имена полей так, как они определены в DTO.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Validate прогоняет структуру через все правила.
// Возвращает *ValidationError с картой полей или nil.
func (v *Validator) Validate(obj interface{}) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageForTag(fe)
	}

	return &ValidationError{Errors: fieldErrors}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "is-user-role":
		return "must be one of: user, provider, admin"
	case "is-user-status":
		return "must be one of: Active, Banned, Suspended"
	case "is-provider-status":
		return "must be one of: Active, Pending, Suspended, Deactivated"
	case "is-enquiry-status":
		return "must be one of: new, responded, booked, closed"
	case "is-report-status":
		return "must be one of: pending, in-review, resolved"
	case "is-billing-cycle":
		return "must be one of: Monthly, Quarterly, Yearly"
	case "is-plan-priority":
		return "must be one of: Normal, High, Top"
	case "is-portfolio-type":
		return "must be one of: photo, video"
	default:
		return fmt.Sprintf("failed on rule '%s'", fe.Tag())
	}
}
