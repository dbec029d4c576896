package api

import (
	"context"

	"github.com/kamanbo/techfolio/internal/client/models"
)

// TokenGrant is the response of POST /token.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserType    string `json:"user_type"`
	Username    string `json:"username"`
}

// Registration is the payload of POST /users/.
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Client is the surface of the remote directory service as the application
// consumes it. All methods honor context cancellation and deadlines.
type Client interface {
	Login(ctx context.Context, username, password string) (TokenGrant, error)
	Register(ctx context.Context, reg Registration) (models.User, error)

	CurrentUser(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.User, error)
	SaveEvent(ctx context.Context, id int) error
	SaveOpportunity(ctx context.Context, id int) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, ev models.Event) (models.Event, error)
	UpdateEvent(ctx context.Context, id int, ev models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, id int) error

	ListOpportunities(ctx context.Context) ([]models.Opportunity, error)
	CreateOpportunity(ctx context.Context, op models.Opportunity) (models.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id int, op models.Opportunity) (models.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id int) error
	LikeOpportunity(ctx context.Context, id int) error
	ApplyOpportunity(ctx context.Context, id int) error
}
