package models

// Opportunity types known to the directory service.
const (
	OpportunityResearch   = "Research"
	OpportunityInternship = "Internship"
	OpportunityFellowship = "Fellowship"
	OpportunityGrant      = "Grant"
	OpportunityProject    = "Project"
)

// OpportunityTypes lists the enumerated opportunity categories in display order.
var OpportunityTypes = []string{
	OpportunityResearch,
	OpportunityInternship,
	OpportunityFellowship,
	OpportunityGrant,
	OpportunityProject,
}

// FieldOptions are the research fields offered as tag filters on the
// opportunities view.
var FieldOptions = []string{
	"Machine Learning",
	"Computer Vision",
	"Natural Language Processing",
	"Robotics",
	"Data Science",
	"Software Engineering",
	"Cybersecurity",
	"Artificial Intelligence",
}

// Opportunity is a research/internship posting as served by
// GET /opportunities/. Read-only outside the admin console.
type Opportunity struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	IsVirtual    bool     `json:"virtual"`
	Deadline     string   `json:"deadline"`
	Duration     string   `json:"duration,omitempty"`
	Compensation string   `json:"compensation,omitempty"`
	Requirements []string `json:"requirements"`
	Fields       []string `json:"fields"`
	ContactEmail string   `json:"contact_email"`
	Website      string   `json:"website,omitempty"`
	TagList      []string `json:"tags"`
	Likes        int      `json:"likes"`
}

// SearchText returns the fields the free-text catalog filter scans.
// Organization is searchable here, matching the directory's behavior.
func (o Opportunity) SearchText() []string {
	return []string{o.Title, o.Organization, o.Description}
}

// TypeName returns the enumerated category used by the type filter.
func (o Opportunity) TypeName() string { return o.Type }

// Tags returns the tag collection used by the field/tag filter.
func (o Opportunity) Tags() []string { return o.Fields }

// Virtual reports whether the opportunity is remote.
func (o Opportunity) Virtual() bool { return o.IsVirtual }
