package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kamanbo/techfolio/internal/client/forms"
	"github.com/kamanbo/techfolio/internal/client/models"
	"github.com/kamanbo/techfolio/internal/client/session"
)

// Admin runs the admin console: list, create, edit and delete for both
// catalogs. The gate is re-evaluated on every command, and a session change
// (say, a 401 clearing the session mid-session) ends the console on the
// next prompt.
func (a *App) Admin(ctx context.Context) error {
	if !a.gateView(ctx, true) {
		return nil
	}
	a.navigate(ctx, ViewAdmin)

	// The store emits a change event instead of any implicit re-render: the
	// console subscribes and lets the per-command gate check below throw the
	// user out once the session stops being an admin one.
	unsubscribe := a.session.Subscribe(func(st session.State) {
		if !st.IsAdmin() {
			printlnFn("Session changed; leaving admin console.")
		}
	})
	defer unsubscribe()

	printlnFn("Admin console. Commands: events, opps, create event|opp, edit event|opp <id>, delete event|opp <id>, back")

	for {
		if !a.gateView(ctx, true) {
			return nil
		}

		line, err := getSimpleText(a.reader, "admin", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch {
		case parts[0] == "back" || parts[0] == "exit":
			a.navigate(ctx, ViewHome)
			return nil

		case parts[0] == "events":
			err = a.adminListEvents()

		case parts[0] == "opps" || parts[0] == "opportunities":
			err = a.adminListOpportunities()

		case len(parts) >= 2 && parts[0] == "create" && parts[1] == "event":
			err = a.adminEditEvent(0)

		case len(parts) >= 2 && parts[0] == "create" && parts[1] == "opp":
			err = a.adminEditOpportunity(0)

		case len(parts) >= 3 && parts[0] == "edit" && parts[1] == "event":
			err = a.adminEditByID(parts[2], a.adminEditEvent)

		case len(parts) >= 3 && parts[0] == "edit" && parts[1] == "opp":
			err = a.adminEditByID(parts[2], a.adminEditOpportunity)

		case len(parts) >= 3 && parts[0] == "delete" && parts[1] == "event":
			err = a.adminDelete(parts[2], a.api.DeleteEvent)

		case len(parts) >= 3 && parts[0] == "delete" && parts[1] == "opp":
			err = a.adminDelete(parts[2], a.api.DeleteOpportunity)

		default:
			printlnFn("Unknown admin command:", line)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func (a *App) adminListEvents() error {
	events, err := a.api.ListEvents(a.viewCtx)
	if err != nil {
		return err
	}
	for _, ev := range events {
		printEvent(ev)
	}
	return nil
}

func (a *App) adminListOpportunities() error {
	ops, err := a.api.ListOpportunities(a.viewCtx)
	if err != nil {
		return err
	}
	for _, op := range ops {
		printOpportunity(op)
	}
	return nil
}

func (a *App) adminEditByID(raw string, edit func(id int) error) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("bad id %q: %w", raw, err)
	}
	return edit(id)
}

func (a *App) adminDelete(raw string, del func(ctx context.Context, id int) error) error {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("bad id %q: %w", raw, err)
	}
	confirmed, err := GetBool(a.reader, fmt.Sprintf("Delete item %d?", id), false, os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		printlnFn("Cancelled.")
		return nil
	}
	if err := del(a.viewCtx, id); err != nil {
		return err
	}
	printlnFn("Item deleted.")
	return nil
}

// adminEditEvent drives the event draft. id == 0 means create.
func (a *App) adminEditEvent(id int) error {
	var form forms.EventForm
	if id != 0 {
		events, err := a.api.ListEvents(a.viewCtx)
		if err != nil {
			return err
		}
		found := false
		for _, ev := range events {
			if ev.ID == id {
				form = forms.EventFormFrom(ev)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("event %d not found", id)
		}
	}

	var err error
	if form.Name, err = GetTextDefault(a.reader, "Name", form.Name, os.Stdout); err != nil {
		return err
	}
	if form.Description, err = GetTextDefault(a.reader, "Description", form.Description, os.Stdout); err != nil {
		return err
	}
	if form.EventType, err = GetTextDefault(a.reader,
		"Type ("+forms.JoinList(models.EventTypes)+")", form.EventType, os.Stdout); err != nil {
		return err
	}
	if form.Date, err = GetTextDefault(a.reader, "Date (YYYY-MM-DD)", form.Date, os.Stdout); err != nil {
		return err
	}
	if form.Duration, err = GetTextDefault(a.reader, "Duration", form.Duration, os.Stdout); err != nil {
		return err
	}
	if form.Location, err = GetTextDefault(a.reader, "Location", form.Location, os.Stdout); err != nil {
		return err
	}
	if form.RegistrationLink, err = GetTextDefault(a.reader, "Registration link", form.RegistrationLink, os.Stdout); err != nil {
		return err
	}
	if form.IsVirtual, err = GetBool(a.reader, "Virtual?", form.IsVirtual, os.Stdout); err != nil {
		return err
	}

	// List-typed fields are edited as one comma-delimited line.
	techRaw, err := GetTextDefault(a.reader, "Tech stack (comma-separated)",
		forms.JoinList(form.TechStack), os.Stdout)
	if err != nil {
		return err
	}
	form.TechStack = forms.SplitList(techRaw)

	speakersRaw, err := GetTextDefault(a.reader, "Speakers (comma-separated)",
		forms.JoinList(form.Speakers), os.Stdout)
	if err != nil {
		return err
	}
	form.Speakers = forms.SplitList(speakersRaw)

	if err := form.Validate(); err != nil {
		return err
	}

	if id == 0 {
		created, err := a.api.CreateEvent(a.viewCtx, form.Event())
		if err != nil {
			return err
		}
		printlnFn("Event created with id", created.ID)
		return nil
	}
	if _, err := a.api.UpdateEvent(a.viewCtx, id, form.Event()); err != nil {
		return err
	}
	printlnFn("Event updated.")
	return nil
}

// adminEditOpportunity drives the opportunity draft. id == 0 means create.
func (a *App) adminEditOpportunity(id int) error {
	var form forms.OpportunityForm
	if id != 0 {
		ops, err := a.api.ListOpportunities(a.viewCtx)
		if err != nil {
			return err
		}
		found := false
		for _, op := range ops {
			if op.ID == id {
				form = forms.OpportunityFormFrom(op)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("opportunity %d not found", id)
		}
	}

	var err error
	if form.Title, err = GetTextDefault(a.reader, "Title", form.Title, os.Stdout); err != nil {
		return err
	}
	if form.Organization, err = GetTextDefault(a.reader, "Organization", form.Organization, os.Stdout); err != nil {
		return err
	}
	if form.Description, err = GetTextDefault(a.reader, "Description", form.Description, os.Stdout); err != nil {
		return err
	}
	if form.Type, err = GetTextDefault(a.reader,
		"Type ("+forms.JoinList(models.OpportunityTypes)+")", form.Type, os.Stdout); err != nil {
		return err
	}
	if form.Location, err = GetTextDefault(a.reader, "Location", form.Location, os.Stdout); err != nil {
		return err
	}
	if form.Deadline, err = GetTextDefault(a.reader, "Deadline (YYYY-MM-DD)", form.Deadline, os.Stdout); err != nil {
		return err
	}
	if form.Duration, err = GetTextDefault(a.reader, "Duration", form.Duration, os.Stdout); err != nil {
		return err
	}
	if form.Compensation, err = GetTextDefault(a.reader, "Compensation", form.Compensation, os.Stdout); err != nil {
		return err
	}
	if form.ContactEmail, err = GetTextDefault(a.reader, "Contact email", form.ContactEmail, os.Stdout); err != nil {
		return err
	}
	if form.Website, err = GetTextDefault(a.reader, "Website", form.Website, os.Stdout); err != nil {
		return err
	}
	if form.IsVirtual, err = GetBool(a.reader, "Virtual?", form.IsVirtual, os.Stdout); err != nil {
		return err
	}

	reqRaw, err := GetTextDefault(a.reader, "Requirements (comma-separated)",
		forms.JoinList(form.Requirements), os.Stdout)
	if err != nil {
		return err
	}
	form.Requirements = forms.SplitList(reqRaw)

	fieldsRaw, err := GetTextDefault(a.reader, "Fields (comma-separated)",
		forms.JoinList(form.Fields), os.Stdout)
	if err != nil {
		return err
	}
	form.Fields = forms.SplitList(fieldsRaw)

	tagsRaw, err := GetTextDefault(a.reader, "Tags (comma-separated)",
		forms.JoinList(form.Tags), os.Stdout)
	if err != nil {
		return err
	}
	form.Tags = forms.SplitList(tagsRaw)

	if err := form.Validate(); err != nil {
		return err
	}

	if id == 0 {
		created, err := a.api.CreateOpportunity(a.viewCtx, form.Opportunity())
		if err != nil {
			return err
		}
		printlnFn("Opportunity created with id", created.ID)
		return nil
	}
	if _, err := a.api.UpdateOpportunity(a.viewCtx, id, form.Opportunity()); err != nil {
		return err
	}
	printlnFn("Opportunity updated.")
	return nil
}
