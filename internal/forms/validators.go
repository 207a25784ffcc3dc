package forms

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required проверяет, что значение не пустое после обрезки пробелов
func Required(errs FieldErrors, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, MsgRequired)
		return false
	}
	return true
}

// IsEmail проверяет форму адреса: что-то@что-то.что-то без пробелов
func IsEmail(value string) bool {
	return emailRe.MatchString(value)
}

// Email обязательное поле с email
func Email(errs FieldErrors, field, value string) {
	if !Required(errs, field, value) {
		return
	}
	if !IsEmail(strings.TrimSpace(value)) {
		errs.Add(field, MsgInvalidEmail)
	}
}

// Password обязательный пароль минимальной длины
func Password(errs FieldErrors, field, value string) {
	if !Required(errs, field, value) {
		return
	}
	if utf8.RuneCountInString(value) < domain.MinPasswordLength {
		errs.Add(field, MsgPasswordLength)
	}
}

// Match проверяет совпадение пароля и подтверждения
func Match(errs FieldErrors, field, value, confirmation string) {
	if value != confirmation {
		errs.Add(field, MsgPasswordMatch)
	}
}

// MaxLength ограничивает длину текста в символах
func MaxLength(errs FieldErrors, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, MsgTooLong)
	}
}

// ID разбирает обязательный положительный идентификатор из select
func ID(errs FieldErrors, field, value string) int64 {
	if !Required(errs, field, value) {
		return 0
	}
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		errs.Add(field, MsgInvalidOption)
		return 0
	}
	return id
}

// IntRange разбирает обязательное целое в диапазоне [min, max]
func IntRange(errs FieldErrors, field, value string, min, max int) int {
	if !Required(errs, field, value) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		errs.Add(field, MsgInvalidNumber)
		return 0
	}
	if n < min || n > max {
		errs.Add(field, MsgOutOfRange)
		return 0
	}
	return n
}

// FloatRange разбирает обязательное число в диапазоне (min, max].
// Принимает запятую как десятичный разделитель.
func FloatRange(errs FieldErrors, field, value string, min, max float64) float64 {
	if !Required(errs, field, value) {
		return 0
	}
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		errs.Add(field, MsgInvalidNumber)
		return 0
	}
	if f <= min || f > max {
		errs.Add(field, MsgOutOfRange)
		return 0
	}
	return f
}
