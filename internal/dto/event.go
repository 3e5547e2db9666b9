package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityPhotoUploaded = "photo_uploaded"
	ActivityPhotoDeleted  = "photo_deleted"
)

// ActivityEvent notifies downstream consumers about photo lifecycle
// changes. Delivery is best-effort.
type ActivityEvent struct {
	Type       string    `json:"type"`
	PhotoID    uuid.UUID `json:"photo_id"`
	FamilyID   uuid.UUID `json:"family_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
