package models

// Event types known to the directory service.
const (
	EventConference = "Conference"
	EventHackathon  = "Hackathon"
	EventWorkshop   = "Workshop"
	EventMeetup     = "Meetup"
	EventWebinar    = "Webinar"
	EventTechTalk   = "Tech Talk"
)

// EventTypes lists the enumerated event categories in display order.
var EventTypes = []string{
	EventConference,
	EventHackathon,
	EventWorkshop,
	EventMeetup,
	EventWebinar,
	EventTechTalk,
}

// Event is a tech event as served by GET /events/. The client treats it as
// read-only outside the admin console. An empty Location means the event is
// fully virtual.
type Event struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	EventType        string   `json:"event_type"`
	Date             string   `json:"date"`
	Duration         string   `json:"duration,omitempty"`
	Location         string   `json:"location,omitempty"`
	IsVirtual        bool     `json:"is_virtual"`
	TechStack        []string `json:"tech_stack"`
	Speakers         []string `json:"speakers,omitempty"`
	RegistrationLink string   `json:"registration_link"`
	AttendeesCount   int      `json:"attendees_count"`
}

// SearchText returns the fields the free-text catalog filter scans.
func (e Event) SearchText() []string {
	return []string{e.Name, e.Description}
}

// TypeName returns the enumerated category used by the type filter.
func (e Event) TypeName() string { return e.EventType }

// Tags returns the tag collection used by the field/tag filter.
func (e Event) Tags() []string { return e.TechStack }

// Virtual reports whether the event is held online.
func (e Event) Virtual() bool { return e.IsVirtual }
