package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	"github.com/rosdobro/dobrodela-cli/internal/client/services"
	"github.com/rosdobro/dobrodela-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// account; on success the user is logged in right away. Validation messages
// are printed per field. Password byte slices are securely wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Введите имя", os.Stdout)
	if err != nil {
		return err
	}

	login, err := getSimpleText(a.reader, "Введите email", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Роль (user/nko, по умолчанию user)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleUser)
	}

	password, err := getPassword("Пароль", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Повторите пароль", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.auth.Register(ctx, fullName, login, string(password), string(confirm), models.Role(role))
	if err != nil {
		printAuthError(err)
		return err
	}

	printlnFn("Аккаунт создан, вы вошли как", login)
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// holder flips to Authenticated and the prompt picks up the login name.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Введите email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Пароль", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, login, string(password)); err != nil {
		printAuthError(err)
		return err
	}

	printlnFn("Вы вошли как", login)
	return nil
}

// Logout forgets the session. This never fails from the user's point of
// view, even when the backend is unreachable.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Вы вышли из аккаунта")
	return nil
}

// Whoami re-fetches and prints the current account.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.auth.RefreshUser(ctx); err != nil {
		printAuthError(err)
		return err
	}

	u := a.session.User()
	if u == nil {
		printlnFn("Вы не вошли в аккаунт")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> — роль: %s", u.FullName, u.Login, u.Role))
	return nil
}

// printAuthError renders validation errors per field and everything else as
// a single line.
func printAuthError(err error) {
	var fe services.FieldErrors
	if errors.As(err, &fe) {
		for field, msg := range fe {
			printlnFn(fmt.Sprintf("  %s: %s", field, msg))
		}
		return
	}
	printlnFn(err.Error())
}
