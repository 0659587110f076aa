// Package validation содержит функции валидации входных данных.
package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/mmeshcher/arcade-system/internal/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Ошибка регистрации возможна только при пустом имени правила.
	_ = validate.RegisterValidation("alphaspace", validateAlphaSpace)
	_ = validate.RegisterValidation("digitsonly", validateDigitsOnly)
}

// validateAlphaSpace допускает только буквы и пробелы: составные имена вида "Jose Maria" корректны.
func validateAlphaSpace(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	hasLetter := false
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}
	return hasLetter
}

// validateDigitsOnly допускает только цифры.
func validateDigitsOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateCustomer проверяет полноту и формат контактных данных покупателя.
func ValidateCustomer(c model.Customer) error {
	return validate.Struct(c)
}

// userInput повторяет правила Customer без адреса: при регистрации адрес ещё не известен.
type userInput struct {
	Name  string `validate:"required,alphaspace"`
	Phone string `validate:"required,digitsonly,max=15"`
}

// ValidateUser проверяет имя и телефон при регистрации покупателя.
func ValidateUser(name, phone string) error {
	return validate.Struct(userInput{Name: name, Phone: phone})
}
