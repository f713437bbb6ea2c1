package cli

import (
	"context"
	"fmt"
)

// Register prompts for a username, full name and password and signs the
// new account in.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	s, err := a.client.Register(ctx, username, fullName, password)
	if err != nil {
		return err
	}
	a.setSession(s)

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.User.FullName)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	s, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.setSession(s)

	fmt.Fprintf(a.out, "Logged in as %s\n", s.User.Username)
	return nil
}

// Logout ends the session on the backend and forgets it locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	a.setSession(nil)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.user()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s), id %s\n", u.FullName, u.Username, u.ID)
	return nil
}
