package profile

import (
	"context"

	"github.com/google/uuid"
)

// Profile is the slice of the remote account record used to pre-fill the
// checkout form.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// Source fetches a user's saved profile. A nil profile with a nil error means
// the user has no saved profile.
type Source interface {
	Fetch(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
