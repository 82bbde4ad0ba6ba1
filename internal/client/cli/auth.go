package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/justdoit/internal/client/remote"
)

func (a *App) register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return
	}
	displayName, err := GetSimpleText(a.reader, "Display name", os.Stdout)
	if err != nil {
		return
	}

	res := a.guard.SignUp(ctx, email, password, displayName)
	printlnFn(res.Message)
	if res.Success && a.isAuthenticated() {
		a.navigate("/dashboard")
	}
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return
	}
	remember, err := GetBool(a.reader, "Remember me", os.Stdout)
	if err != nil {
		return
	}

	res := a.guard.SignIn(ctx, email, password, remember)
	printlnFn(res.Message)
	if res.Success {
		a.resume()
		if a.path == "/login" {
			a.navigate("/dashboard")
		}
	}
}

func (a *App) logout(ctx context.Context) {
	if err := a.guard.SignOut(ctx); err != nil {
		// The local session is cleared regardless.
		printlnFn("signed out locally;", err.Error())
	} else {
		printlnFn("signed out")
	}
	a.navigate("/login")
	a.resumePath = ""
}

func (a *App) recoverPassword(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	if err := a.guard.ResetPassword(ctx, email); err != nil {
		printlnFn("error:", err.Error())
		return
	}
	printlnFn("if the account exists, a recovery mail is on its way")
}

func (a *App) whoami() {
	acc := a.guard.Account()
	if acc == nil {
		printlnFn("not signed in")
		return
	}
	printlnFn(acc.Email, "("+acc.DisplayName+")")
}

func (a *App) editProfile(ctx context.Context) {
	acc := a.guard.Account()
	if acc == nil {
		return
	}
	printlnFn("current display name:", acc.DisplayName)

	name, err := GetOptionalText(a.reader, "New display name", os.Stdout)
	if err != nil || name == nil {
		return
	}

	if err := a.guard.UpdateProfile(ctx, remote.AccountPatch{DisplayName: name}); err != nil {
		printlnFn("error:", err.Error())
		return
	}
	printlnFn("profile updated")
}
