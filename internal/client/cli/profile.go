package cli

import (
	"context"
	"os"

	"github.com/kamanbo/techfolio/internal/client/forms"
	"github.com/kamanbo/techfolio/internal/client/gate"
)

// gateView evaluates the view gate for the current session and performs the
// redirect on denial. Returns true when the view may render.
func (a *App) gateView(ctx context.Context, adminOnly bool) bool {
	st := a.session.State()
	decision := gate.Evaluate(st.Loaded, st.Role, adminOnly)
	switch decision.State {
	case gate.Granted:
		return true
	case gate.Loading:
		printlnFn("Authenticating...")
		return false
	default:
		switch decision.Redirect {
		case gate.TargetLogin:
			printlnFn("Please log in first.")
			a.navigate(ctx, ViewLogin)
		case gate.TargetHome:
			printlnFn("Admin access required.")
			a.navigate(ctx, ViewHome)
		}
		return false
	}
}

// Profile shows the stored profile. Admin sessions only carry a minimal
// identity, so there is nothing beyond the username to display for them.
func (a *App) Profile(ctx context.Context) error {
	if !a.gateView(ctx, false) {
		return nil
	}
	a.navigate(ctx, ViewProfile)

	st := a.session.State()
	if st.Profile == nil {
		printlnFn("No profile loaded yet.")
		return nil
	}
	if st.IsAdmin() {
		printlnFn("admin: " + st.Profile.Username)
		return nil
	}
	printProfile(*st.Profile)
	return nil
}

// EditProfile edits a draft copy of the profile and submits it. The stored
// profile is replaced only by the server's response to a successful save;
// an abandoned or failed edit leaves it untouched.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.gateView(ctx, false) {
		return nil
	}
	a.navigate(ctx, ViewProfile)

	st := a.session.State()
	if !st.IsUser() || st.Profile == nil {
		printlnFn("Profile editing is only available for user accounts.")
		return nil
	}

	form := forms.NewProfileForm(*st.Profile)

	var err error
	if form.Email, err = GetTextDefault(a.reader, "Email", form.Email, os.Stdout); err != nil {
		return err
	}
	if form.FullName, err = GetTextDefault(a.reader, "Full name", form.FullName, os.Stdout); err != nil {
		return err
	}
	if form.Bio, err = GetTextDefault(a.reader, "Bio", form.Bio, os.Stdout); err != nil {
		return err
	}

	printlnFn("Current interests: " + forms.JoinList(form.Interests))
	for {
		interest, err := getSimpleText(a.reader, "Add interest (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if interest == "" {
			break
		}
		form.AddInterest(interest)
	}
	for {
		drop, err := getSimpleText(a.reader, "Remove interest (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if drop == "" {
			break
		}
		form.RemoveInterest(drop)
	}

	if err := form.Validate(); err != nil {
		return err
	}

	updated, err := a.session.UpdateProfile(a.viewCtx, form.Update())
	if err != nil {
		printlnFn("Profile update failed; nothing was changed.")
		return err
	}

	printlnFn("Profile updated.")
	printProfile(updated)
	return nil
}
