package cli

import (
	"context"
	"errors"
	"os"

	"github.com/kamanbo/techfolio/internal/client/api"
	"github.com/kamanbo/techfolio/internal/client/forms"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally and authenticates.
// On success the session store holds the token, role and (for user
// sessions) the freshly fetched profile.
func (a *App) Login(ctx context.Context) error {
	a.navigate(ctx, ViewLogin)

	username, err := getSimpleText(a.reader, "Username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	form := forms.LoginForm{Username: username, Password: password}
	if err := form.Validate(); err != nil {
		return err
	}

	if err := a.session.Login(a.viewCtx, form.Username, form.Password); err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			printlnFn("Invalid username or password.")
		case errors.Is(err, api.ErrRateLimited):
			printlnFn("Too many login attempts. Please try again later.")
		case errors.Is(err, api.ErrNetwork):
			printlnFn("Network error. Please check your connection.")
		}
		return err
	}

	printlnFn("Logged in.")
	a.navigate(ctx, ViewHome)
	return nil
}

// Register prompts for new-account data and submits it. Registration does
// not establish a session; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	a.navigate(ctx, ViewRegister)

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	form := forms.RegisterForm{
		Email:           email,
		Username:        username,
		FullName:        fullName,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if err := form.Validate(); err != nil {
		return err
	}

	if err := a.session.Register(a.viewCtx, form.Registration()); err != nil {
		return err
	}

	printlnFn("Account created. You can log in now.")
	a.navigate(ctx, ViewLogin)
	return nil
}

// Logout clears the session locally. No network call is involved and the
// command never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.navigate(ctx, ViewHome)
	printlnFn("Logged out.")
	return nil
}
