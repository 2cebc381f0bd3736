package shared

import "github.com/google/uuid"

// Actor is the authenticated identity performing an operation, as resolved
// by the identity middleware. The CRUD core consumes only this triple.
type Actor struct {
	ID          uuid.UUID
	IsSuperuser bool
	IsActive    bool
}

// CanAccess reports whether the actor may read or mutate a row owned by
// ownerID. Superusers bypass the ownership check for all entities.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsSuperuser || a.ID == ownerID
}
