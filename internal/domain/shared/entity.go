package shared

import (
	"time"

	"github.com/google/uuid"
)

// OwnedEntity provides the common fields for every user-owned record: a
// generated id, the owning user, and creation/update timestamps in UTC.
type OwnedEntity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	DateCreated time.Time `gorm:"not null;index" json:"date_created"`
	DateUpdated time.Time `gorm:"not null" json:"date_updated"`
}

// Ownable is implemented by all owner-scoped entities.
type Ownable interface {
	GetID() uuid.UUID
	GetOwnerID() uuid.UUID
	SetOwner(id uuid.UUID)
	Touch(now time.Time)
}

// GetID returns the entity ID.
func (e *OwnedEntity) GetID() uuid.UUID {
	return e.ID
}

// GetOwnerID returns the owning user's ID.
func (e *OwnedEntity) GetOwnerID() uuid.UUID {
	return e.OwnerID
}

// SetOwner sets the owning user. The owner is assigned exactly once, at
// creation, from the authenticated actor.
func (e *OwnedEntity) SetOwner(id uuid.UUID) {
	e.OwnerID = id
}

// Touch refreshes the update timestamp.
func (e *OwnedEntity) Touch(now time.Time) {
	e.DateUpdated = now.UTC()
}

// NewOwnedEntity creates a new base entity with a generated ID and UTC
// timestamps. The owner is set later by the CRUD core, never from input.
func NewOwnedEntity() OwnedEntity {
	now := time.Now().UTC()
	return OwnedEntity{
		ID:          uuid.New(),
		DateCreated: now,
		DateUpdated: now,
	}
}
