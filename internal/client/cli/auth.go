package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/router"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and hands them to the session manager.
// Empty input is refused before any request is made. A rejected login is
// shown on the login screen, not returned: the user sees the same message
// whatever the cause.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		fmt.Fprintln(a.out, "Username must not be empty")
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) == 0 {
		fmt.Fprintln(a.out, "Password must not be empty")
		return nil
	}

	if err := a.session.Login(ctx, userName, password); err != nil {
		if errors.Is(err, services.ErrBusy) {
			return err
		}
		a.log.Debug(ctx, "login rejected", "kind", services.Classify(err).String())
	}
	return nil
}

// Logout ends the session. It never fails from the user's point of view
// unless another session operation is running.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Profile prints the signed-in user again.
func (a *App) Profile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if router.Select(snap) != router.ViewProfile {
		return fmt.Errorf("not signed in")
	}
	renderProfile(a.out, snap.User)
	return nil
}

// Status probes the upstream and prints reachability, session and store.
func (a *App) Status(ctx context.Context) error {
	server := "reachable"
	if err := a.probe(ctx); err != nil {
		server = "unreachable"
	}

	snap := a.session.Snapshot()
	session := snap.Status.String()
	if snap.LoggedIn() {
		session += " as " + snap.User.Username
	}

	fmt.Fprintf(a.out, "server:  %s (%s)\n", a.config.ServerBaseURL, server)
	fmt.Fprintf(a.out, "session: %s\n", session)
	fmt.Fprintf(a.out, "store:   %s\n", a.config.StoreDriver)
	return nil
}
