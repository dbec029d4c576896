package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamanbo/techfolio/internal/client/api"
	"github.com/kamanbo/techfolio/internal/client/models"
)

type catalogStub struct {
	api.Client
	listEventsFn func(ctx context.Context) ([]models.Event, error)
	listOppsFn   func(ctx context.Context) ([]models.Opportunity, error)
	likeFn       func(ctx context.Context, id int) error
	applyFn      func(ctx context.Context, id int) error
}

func (s *catalogStub) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.listEventsFn(ctx)
}

func (s *catalogStub) ListOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	return s.listOppsFn(ctx)
}

func (s *catalogStub) LikeOpportunity(ctx context.Context, id int) error {
	return s.likeFn(ctx, id)
}

func (s *catalogStub) ApplyOpportunity(ctx context.Context, id int) error {
	return s.applyFn(ctx, id)
}

func TestEventsViewFiltersLocally(t *testing.T) {
	lines := capturePrintln(t)
	// query, single type, single tech tag; the virtual answer comes from
	// the reader.
	stubPrompts(t, []string{"", "Hackathon", ""}, nil)

	stub := &catalogStub{
		listEventsFn: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{
				{ID: 1, Name: "GopherCon", EventType: "Conference"},
				{ID: 2, Name: "Go Hack Night", EventType: "Hackathon"},
			}, nil
		},
	}
	a := newTestApp(t, stub, "\n")

	require.NoError(t, a.Events(context.Background()))
	assert.Equal(t, ViewEvents, a.view)

	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "1 of 2 events")
	assert.Contains(t, joined, "Go Hack Night")
	assert.NotContains(t, joined, "GopherCon")
}

func TestOpportunitiesViewMultiSelect(t *testing.T) {
	lines := capturePrintln(t)
	// query, comma-separated types, comma-separated fields.
	stubPrompts(t, []string{"", "Research, Grant", ""}, nil)

	stub := &catalogStub{
		listOppsFn: func(ctx context.Context) ([]models.Opportunity, error) {
			return []models.Opportunity{
				{ID: 1, Title: "RA Position", Organization: "Nova Labs", Type: "Research"},
				{ID: 2, Title: "Summer Intern", Organization: "Acme", Type: "Internship"},
				{ID: 3, Title: "Equipment Grant", Organization: "City University", Type: "Grant"},
			}, nil
		},
	}
	a := newTestApp(t, stub, "\n")

	require.NoError(t, a.Opportunities(context.Background()))

	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "2 of 3 opportunities")
	assert.Contains(t, joined, "RA Position")
	assert.Contains(t, joined, "Equipment Grant")
	assert.NotContains(t, joined, "Summer Intern")
}

func TestEventsViewPropagatesListError(t *testing.T) {
	capturePrintln(t)
	stub := &catalogStub{
		listEventsFn: func(ctx context.Context) ([]models.Event, error) {
			return nil, api.ErrNetwork
		},
	}
	a := newTestApp(t, stub, "")

	assert.ErrorIs(t, a.Events(context.Background()), api.ErrNetwork)
}

func TestLikeCommand(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, []string{"7"}, nil)

	var liked int
	stub := &catalogStub{
		likeFn: func(ctx context.Context, id int) error {
			liked = id
			return nil
		},
	}
	a := newTestApp(t, stub, "")

	require.NoError(t, a.Like(context.Background()))
	assert.Equal(t, 7, liked)
}

func TestApplyCommand(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, []string{"9"}, nil)

	var applied int
	stub := &catalogStub{
		applyFn: func(ctx context.Context, id int) error {
			applied = id
			return nil
		},
	}
	a := newTestApp(t, stub, "")

	require.NoError(t, a.Apply(context.Background()))
	assert.Equal(t, 9, applied)
}

func TestPromptIDRejectsNonNumeric(t *testing.T) {
	capturePrintln(t)
	stubPrompts(t, []string{"seven"}, nil)

	a := newTestApp(t, &catalogStub{}, "")

	_, err := a.promptID("Event id")
	assert.Error(t, err)
}
