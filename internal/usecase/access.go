package usecase

import (
	"fmt"

	"vidtube/internal/entity"
)

// Owned is the common shape of every content entity that belongs to exactly
// one user.
type Owned interface {
	GetOwnerID() string
}

// requireOwner gates mutations on ownership. It is only called after the
// entity has been loaded, so existence has already been established and a
// failure here is always Forbidden, never NotFound.
func requireOwner(principalID string, resource Owned) error {
	if resource.GetOwnerID() != principalID {
		return fmt.Errorf("principal does not own this resource: %w", entity.ErrForbidden)
	}
	return nil
}
