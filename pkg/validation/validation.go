// Package validation проверяет входные DTO через go-playground/validator
// и возвращает список нарушений вместо одной ошибки
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout формат календарной даты во входных данных
const DateLayout = "2006-01-02"

// Violation одно нарушение входных данных
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations список нарушений; реализует error
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Field + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err возвращает nil, если нарушений нет
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В нарушениях показываем имя поля из json-тега
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	return v
}

// Struct проверяет структуру по validate-тегам
func Struct(s interface{}) Violations {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{{Field: "", Message: err.Error()}}
	}

	result := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, Violation{Field: fe.Field(), Message: messageFor(fe)})
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "date":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
