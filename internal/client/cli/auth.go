package cli

import (
	"context"
	"errors"
	"fmt"

	"worldquery/internal/client/explore"
	"worldquery/internal/client/models"
	"worldquery/internal/client/services"
	"worldquery/internal/common"
)

func (a *App) register(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are already logged in. Log out first to register a new account.")
		return
	}

	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading input", "error", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading input", "error", err)
		return
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return
	}

	user, err := a.registry.Register(ctx, services.SignUpForm{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			fmt.Fprintln(a.out, ve.Message)
		case errors.Is(err, common.ErrDuplicateUser):
			fmt.Fprintln(a.out, "User already exists with this email")
		default:
			a.log.Error(ctx, "error registering user", "error", err)
			fmt.Fprintln(a.out, "Registration failed, please try again.")
		}
		return
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are now logged in.\n", user.Username)
}

func (a *App) login(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are already logged in.")
		return
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading input", "error", err)
		return
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return
	}
	if email == "" || password == "" {
		fmt.Fprintln(a.out, "Please fill in all fields")
		return
	}

	user, err := a.session.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.log.Error(ctx, "error logging in", "error", err)
		fmt.Fprintln(a.out, "Login failed, please try again.")
		return
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
}

func (a *App) logout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return
	}

	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "error logging out", "error", err)
	}

	// view state belongs to the session that just ended
	a.criteria = explore.Criteria{}
	a.slots = [explore.Slots]*models.Country{}
	a.expanded = explore.ExpandSet{}

	fmt.Fprintln(a.out, "Logged out.")
}
