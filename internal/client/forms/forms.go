// Package forms holds the local drafts behind every submission: login,
// registration, profile edit, and the admin event/opportunity editors.
// A draft mirrors one entity's editable fields and is validated before any
// network call; the stored entity is never touched until a successful save
// response comes back.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kamanbo/techfolio/internal/client/api"
	"github.com/kamanbo/techfolio/internal/client/models"
)

// ErrValidation classes every client-side validation failure. Match with
// errors.Is; the wrapped sentinels below carry the specific reason.
var ErrValidation = errors.New("validation error")

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

var (
	ErrUsernameRequired     = validationError("username is required")
	ErrPasswordRequired     = validationError("password is required")
	ErrPasswordTooShort     = validationError("password must be at least 8 characters long")
	ErrPasswordMismatch     = validationError("passwords do not match")
	ErrEmailInvalid         = validationError("please enter a valid email address")
	ErrFullNameRequired     = validationError("full name is required")
	ErrNameRequired         = validationError("name is required")
	ErrTitleRequired        = validationError("title is required")
	ErrOrganizationRequired = validationError("organization is required")
)

const minPasswordLength = 8

// LoginForm collects credentials for the token endpoint.
type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) Validate() error {
	if strings.TrimSpace(f.Username) == "" {
		return ErrUsernameRequired
	}
	if f.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// RegisterForm collects new-account data.
type RegisterForm struct {
	Email           string
	Username        string
	FullName        string
	Password        string
	ConfirmPassword string
}

func (f RegisterForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(f.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if !strings.Contains(f.Email, "@") {
		return ErrEmailInvalid
	}
	if strings.TrimSpace(f.Username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(f.FullName) == "" {
		return ErrFullNameRequired
	}
	return nil
}

// Registration builds the POST /users/ payload.
func (f RegisterForm) Registration() api.Registration {
	return api.Registration{
		Email:    f.Email,
		Username: f.Username,
		Password: f.Password,
		FullName: f.FullName,
	}
}

// ProfileForm is a draft copy of the editable profile fields. It never
// aliases the stored profile's slices, so an abandoned edit leaves the
// session untouched.
type ProfileForm struct {
	Email     string
	FullName  string
	Bio       string
	Interests []string
}

// NewProfileForm seeds a draft from the currently stored profile.
func NewProfileForm(u models.User) ProfileForm {
	return ProfileForm{
		Email:     u.Email,
		FullName:  u.FullName,
		Bio:       u.Bio,
		Interests: append([]string(nil), u.Interests...),
	}
}

// AddInterest appends an interest unless it is blank or already present.
func (f *ProfileForm) AddInterest(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	for _, existing := range f.Interests {
		if existing == s {
			return
		}
	}
	f.Interests = append(f.Interests, s)
}

// RemoveInterest drops every occurrence of s.
func (f *ProfileForm) RemoveInterest(s string) {
	kept := f.Interests[:0]
	for _, existing := range f.Interests {
		if existing != s {
			kept = append(kept, existing)
		}
	}
	f.Interests = kept
}

func (f ProfileForm) Validate() error {
	if !strings.Contains(f.Email, "@") {
		return ErrEmailInvalid
	}
	if strings.TrimSpace(f.FullName) == "" {
		return ErrFullNameRequired
	}
	return nil
}

// Update builds the PUT /users/me payload from the draft. The interests
// list is always sent, even when empty: the server leaves the field alone
// when it is absent, and clearing every interest is a real edit.
func (f ProfileForm) Update() models.ProfileUpdate {
	email, fullName, bio := f.Email, f.FullName, f.Bio
	interests := f.Interests
	if interests == nil {
		interests = []string{}
	}
	return models.ProfileUpdate{
		Email:     &email,
		FullName:  &fullName,
		Bio:       &bio,
		Interests: interests,
	}
}

// EventForm is the admin draft for creating or editing an event.
type EventForm struct {
	Name             string
	Description      string
	EventType        string
	Date             string
	Duration         string
	Location         string
	RegistrationLink string
	IsVirtual        bool
	TechStack        []string
	Speakers         []string
}

// EventFormFrom seeds an edit draft from an existing event.
func EventFormFrom(ev models.Event) EventForm {
	return EventForm{
		Name:             ev.Name,
		Description:      ev.Description,
		EventType:        ev.EventType,
		Date:             ev.Date,
		Duration:         ev.Duration,
		Location:         ev.Location,
		RegistrationLink: ev.RegistrationLink,
		IsVirtual:        ev.IsVirtual,
		TechStack:        append([]string(nil), ev.TechStack...),
		Speakers:         append([]string(nil), ev.Speakers...),
	}
}

func (f EventForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Event builds the create/update payload from the draft.
func (f EventForm) Event() models.Event {
	return models.Event{
		Name:             f.Name,
		Description:      f.Description,
		EventType:        f.EventType,
		Date:             f.Date,
		Duration:         f.Duration,
		Location:         f.Location,
		RegistrationLink: f.RegistrationLink,
		IsVirtual:        f.IsVirtual,
		TechStack:        f.TechStack,
		Speakers:         f.Speakers,
	}
}

// OpportunityForm is the admin draft for creating or editing an opportunity.
type OpportunityForm struct {
	Title        string
	Organization string
	Description  string
	Type         string
	Location     string
	Deadline     string
	Duration     string
	Compensation string
	ContactEmail string
	Website      string
	IsVirtual    bool
	Requirements []string
	Fields       []string
	Tags         []string
}

// OpportunityFormFrom seeds an edit draft from an existing opportunity.
func OpportunityFormFrom(op models.Opportunity) OpportunityForm {
	return OpportunityForm{
		Title:        op.Title,
		Organization: op.Organization,
		Description:  op.Description,
		Type:         op.Type,
		Location:     op.Location,
		Deadline:     op.Deadline,
		Duration:     op.Duration,
		Compensation: op.Compensation,
		ContactEmail: op.ContactEmail,
		Website:      op.Website,
		IsVirtual:    op.IsVirtual,
		Requirements: append([]string(nil), op.Requirements...),
		Fields:       append([]string(nil), op.Fields...),
		Tags:         append([]string(nil), op.TagList...),
	}
}

func (f OpportunityForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(f.Organization) == "" {
		return ErrOrganizationRequired
	}
	if !strings.Contains(f.ContactEmail, "@") {
		return ErrEmailInvalid
	}
	return nil
}

// Opportunity builds the create/update payload from the draft.
func (f OpportunityForm) Opportunity() models.Opportunity {
	return models.Opportunity{
		Title:        f.Title,
		Organization: f.Organization,
		Description:  f.Description,
		Type:         f.Type,
		Location:     f.Location,
		Deadline:     f.Deadline,
		Duration:     f.Duration,
		Compensation: f.Compensation,
		ContactEmail: f.ContactEmail,
		Website:      f.Website,
		IsVirtual:    f.IsVirtual,
		Requirements: f.Requirements,
		Fields:       f.Fields,
		TagList:      f.Tags,
	}
}
