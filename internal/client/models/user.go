package models

import "time"

// User is the profile projection held by the client. The username is
// immutable once set; every other field may change through a profile
// update. Admin sessions carry only Username, all other fields zero.
type User struct {
	ID                 int       `json:"id"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	FullName           string    `json:"full_name"`
	Bio                string    `json:"bio,omitempty"`
	Interests          []string  `json:"interests"`
	SavedEvents        []int     `json:"saved_events"`
	SavedOpportunities []int     `json:"saved_opportunities"`
	CreatedAt          time.Time `json:"created_at"`
}

// ProfileUpdate is the partial payload accepted by PUT /users/me.
// Nil fields are omitted so the server only touches what was edited.
// Interests must not carry omitempty: the server skips the field when it is
// absent, so clearing every interest has to arrive as an explicit [].
type ProfileUpdate struct {
	Email     *string  `json:"email,omitempty"`
	FullName  *string  `json:"full_name,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Interests []string `json:"interests"`
}
