package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	"github.com/rosdobro/dobrodela-cli/internal/common"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgBadEmail         = "Введите корректный email адрес"
	msgPasswordRequired = "Пароль обязателен"
	msgPasswordTooShort = "Пароль должен содержать минимум 6 символов"
	msgNameTooShort     = "Имя должно содержать минимум 2 символа"
	msgPasswordMismatch = "Пароли не совпадают"
	msgUnknownRole      = "Недопустимая роль"
)

// FieldErrors maps an offending field to its message. These are computed
// before any network call; a request with field errors is never submitted.
// Matches common.ErrValidation via errors.Is.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool { return target == common.ErrValidation }

// validateLogin checks a login form before submission.
func validateLogin(login, password string) error {
	errs := FieldErrors{}
	if !emailRe.MatchString(login) {
		errs["login"] = msgBadEmail
	}
	switch {
	case password == "":
		errs["password"] = msgPasswordRequired
	case utf8.RuneCountInString(password) < 6:
		errs["password"] = msgPasswordTooShort
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateRegistration checks a registration form before submission. The
// role must come from the closed enumeration; unknown values are rejected
// here, at the validation boundary.
func validateRegistration(fullName, login, password, passwordConfirm string, role models.Role) error {
	errs := FieldErrors{}
	if utf8.RuneCountInString(strings.TrimSpace(fullName)) < 2 {
		errs["full_name"] = msgNameTooShort
	}
	if !emailRe.MatchString(login) {
		errs["login"] = msgBadEmail
	}
	switch {
	case password == "":
		errs["password"] = msgPasswordRequired
	case utf8.RuneCountInString(password) < 6:
		errs["password"] = msgPasswordTooShort
	case password != passwordConfirm:
		errs["password_confirm"] = msgPasswordMismatch
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		errs["role"] = msgUnknownRole
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
