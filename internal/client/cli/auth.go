package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/artembredak/todocli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects username, email, and password (with confirmation),
// validates them locally, creates the account, and signs the new user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{Username: username, Email: email, Password: password, Confirm: confirm}
	if err := reg.Validate(); err != nil {
		return err
	}

	user, err := a.client.Register(ctx, reg.Username, reg.Email, reg.Password)
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, *user); err != nil {
		return err
	}

	fmt.Println("Welcome,", user.Username)
	return a.cache.Refresh(ctx, user.Owner(), models.FilterAll)
}

// Login authenticates against the server by email and password and loads
// the user's tasks on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, *user); err != nil {
		return err
	}

	fmt.Println("Welcome,", user.Username)
	return a.cache.Refresh(ctx, user.Owner(), models.FilterAll)
}

// Logout clears the session and drops the cached task list.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.cache.Reset()
	a.mu.Lock()
	a.search = ""
	a.mu.Unlock()
	fmt.Println("Logged out")
	return nil
}

// WhoAmI prints the authenticated identity.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", u.Username, u.Email)
	return nil
}

// DeleteAccount asks for the password and an explicit confirmation, then
// deletes the account on the server and ends the session.
func (a *App) DeleteAccount(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, "This permanently deletes your account and tasks. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.DeleteAccount(ctx, u.Email, password); err != nil {
		return err
	}

	fmt.Println("Account deleted")
	return a.Logout(ctx)
}
