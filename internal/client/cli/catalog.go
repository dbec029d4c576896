package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/kamanbo/techfolio/internal/client/catalog"
	"github.com/kamanbo/techfolio/internal/client/forms"
	"github.com/kamanbo/techfolio/internal/client/models"
)

// Events shows the event catalog. The full list is fetched once and the
// criteria are applied locally; the type filter is single-select on this
// view, matching the directory's browse page.
func (a *App) Events(ctx context.Context) error {
	a.navigate(ctx, ViewEvents)

	events, err := a.api.ListEvents(a.viewCtx)
	if err != nil {
		return err
	}

	criteria, err := a.promptEventCriteria()
	if err != nil {
		return err
	}

	visible := catalog.Filter(events, criteria)
	printlnFn(len(visible), "of", len(events), "events")
	for _, ev := range visible {
		printEvent(ev)
	}
	return nil
}

func (a *App) promptEventCriteria() (catalog.Criteria, error) {
	query, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}
	eventType, err := getSimpleText(a.reader,
		"Type, one of "+forms.JoinList(models.EventTypes)+" (empty for all)", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}
	tech, err := getSimpleText(a.reader, "Tech stack tag (empty for all)", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}
	virtual, err := GetTriState(a.reader, "Virtual only?", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}

	c := catalog.Criteria{Query: query, Virtual: virtual}
	if eventType != "" {
		c.Types = []string{eventType}
	}
	if tech != "" {
		c.Fields = []string{tech}
	}
	return c, nil
}

// Opportunities shows the opportunity catalog with multi-select type and
// field filters.
func (a *App) Opportunities(ctx context.Context) error {
	a.navigate(ctx, ViewOpportunities)

	ops, err := a.api.ListOpportunities(a.viewCtx)
	if err != nil {
		return err
	}

	criteria, err := a.promptOpportunityCriteria()
	if err != nil {
		return err
	}

	visible := catalog.Filter(ops, criteria)
	printlnFn(len(visible), "of", len(ops), "opportunities")
	for _, op := range visible {
		printOpportunity(op)
	}
	return nil
}

func (a *App) promptOpportunityCriteria() (catalog.Criteria, error) {
	query, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}
	types, err := getSimpleText(a.reader,
		"Types, comma-separated from "+forms.JoinList(models.OpportunityTypes)+" (empty for all)", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}
	fields, err := getSimpleText(a.reader,
		"Fields, comma-separated from "+forms.JoinList(models.FieldOptions)+" (empty for all)", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}
	virtual, err := GetTriState(a.reader, "Virtual only?", os.Stdout)
	if err != nil {
		return catalog.Criteria{}, err
	}

	c := catalog.Criteria{Query: query, Virtual: virtual}
	if types != "" {
		c.Types = forms.SplitList(types)
	}
	if fields != "" {
		c.Fields = forms.SplitList(fields)
	}
	return c, nil
}

// promptID reads a numeric item identifier.
func (a *App) promptID(prompt string) (int, error) {
	line, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

// SaveEvent bookmarks an event on the user's profile.
func (a *App) SaveEvent(ctx context.Context) error {
	id, err := a.promptID("Event id")
	if err != nil {
		return err
	}
	if err := a.session.SaveEvent(a.viewCtx, id); err != nil {
		return err
	}
	printlnFn("Event saved.")
	return nil
}

// SaveOpportunity bookmarks an opportunity on the user's profile.
func (a *App) SaveOpportunity(ctx context.Context) error {
	id, err := a.promptID("Opportunity id")
	if err != nil {
		return err
	}
	if err := a.session.SaveOpportunity(a.viewCtx, id); err != nil {
		return err
	}
	printlnFn("Opportunity saved.")
	return nil
}

// Like increments an opportunity's like counter.
func (a *App) Like(ctx context.Context) error {
	id, err := a.promptID("Opportunity id")
	if err != nil {
		return err
	}
	if err := a.api.LikeOpportunity(a.viewCtx, id); err != nil {
		return err
	}
	printlnFn("Liked.")
	return nil
}

// Apply records an application for an opportunity.
func (a *App) Apply(ctx context.Context) error {
	id, err := a.promptID("Opportunity id")
	if err != nil {
		return err
	}
	if err := a.api.ApplyOpportunity(a.viewCtx, id); err != nil {
		return err
	}
	printlnFn("Application recorded.")
	return nil
}
