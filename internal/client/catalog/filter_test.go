package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamanbo/techfolio/internal/client/models"
)

func boolPtr(b bool) *bool { return &b }

func sampleOpportunities() []models.Opportunity {
	return []models.Opportunity{
		{
			ID:           1,
			Title:        "Quantum Computing Research Assistant",
			Organization: "Nova Labs",
			Description:  "Assist with error-correction experiments.",
			Type:         models.OpportunityResearch,
			Fields:       []string{"Machine Learning", "Data Science"},
			IsVirtual:    false,
		},
		{
			ID:           2,
			Title:        "Backend Internship",
			Organization: "Quantum Dynamics Inc",
			Description:  "Build internal tooling.",
			Type:         models.OpportunityInternship,
			Fields:       []string{"Software Engineering"},
			IsVirtual:    true,
		},
		{
			ID:           3,
			Title:        "Open Source Fellowship",
			Organization: "The Foundation",
			Description:  "Six months of funded maintenance work.",
			Type:         models.OpportunityFellowship,
			Fields:       []string{"Software Engineering", "Cybersecurity"},
			IsVirtual:    true,
		},
		{
			ID:           4,
			Title:        "Robotics Grant",
			Organization: "City University",
			Description:  "Equipment funding for undergraduate labs.",
			Type:         models.OpportunityGrant,
			Fields:       nil,
			IsVirtual:    false,
		},
	}
}

func TestFilterZeroCriteriaReturnsAllInOrder(t *testing.T) {
	items := sampleOpportunities()
	got := Filter(items, Criteria{})
	require.Len(t, got, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID, got[i].ID)
	}
}

func TestFilterQuery(t *testing.T) {
	items := sampleOpportunities()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "matches title case-insensitively", query: "QUANTUM", want: []int{1, 2}},
		{name: "matches organization", query: "foundation", want: []int{3}},
		{name: "matches description", query: "funding", want: []int{4}},
		{name: "substring not whole word", query: "rror-corr", want: []int{1}},
		{name: "no match", query: "blockchain", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, Criteria{Query: tt.query})
			ids := make([]int, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterTypes(t *testing.T) {
	items := sampleOpportunities()

	got := Filter(items, Criteria{Types: []string{models.OpportunityResearch}})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got = Filter(items, Criteria{Types: []string{models.OpportunityInternship, models.OpportunityGrant}})
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)

	// Empty set means all types.
	got = Filter(items, Criteria{Types: nil})
	assert.Len(t, got, len(items))
}

func TestFilterFields(t *testing.T) {
	items := sampleOpportunities()

	// Intersection, not subset: one shared field is enough.
	got := Filter(items, Criteria{Fields: []string{"Software Engineering", "Robotics"}})
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	// An item with no fields never matches a non-empty filter.
	got = Filter(items, Criteria{Fields: []string{"Machine Learning"}})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	for _, o := range got {
		assert.NotEqual(t, 4, o.ID)
	}
}

func TestFilterVirtual(t *testing.T) {
	items := sampleOpportunities()

	got := Filter(items, Criteria{Virtual: boolPtr(true)})
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got = Filter(items, Criteria{Virtual: boolPtr(false)})
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[1].ID)

	// nil matches either format.
	got = Filter(items, Criteria{Virtual: nil})
	assert.Len(t, got, len(items))
}

func TestFilterPredicatesCombineWithAND(t *testing.T) {
	items := sampleOpportunities()

	got := Filter(items, Criteria{
		Query:   "fellowship",
		Types:   []string{models.OpportunityFellowship},
		Fields:  []string{"Cybersecurity"},
		Virtual: boolPtr(true),
	})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	// Flipping one predicate empties the result.
	got = Filter(items, Criteria{
		Query:   "fellowship",
		Types:   []string{models.OpportunityFellowship},
		Fields:  []string{"Cybersecurity"},
		Virtual: boolPtr(false),
	})
	assert.Empty(t, got)
}

func TestFilterEvents(t *testing.T) {
	events := []models.Event{
		{ID: 1, Name: "GopherCon", EventType: models.EventConference, TechStack: []string{"Go"}, IsVirtual: false},
		{ID: 2, Name: "ML Summit", EventType: models.EventConference, TechStack: []string{"Python", "PyTorch"}, IsVirtual: true},
		{ID: 3, Name: "Go Hack Night", EventType: models.EventHackathon, TechStack: []string{"Go", "Docker"}, IsVirtual: false},
	}

	got := Filter(events, Criteria{Fields: []string{"Go"}})
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got = Filter(events, Criteria{Types: []string{models.EventConference}, Virtual: boolPtr(true)})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := sampleOpportunities()
	before := make([]models.Opportunity, len(items))
	copy(before, items)

	Filter(items, Criteria{Query: "quantum", Virtual: boolPtr(true)})
	assert.Equal(t, before, items)
}
