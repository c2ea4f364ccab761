package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionView is a point-in-time snapshot of an upload session, safe to
// hand out across the service boundary
type SessionView struct {
	ID             uuid.UUID
	ProducerName   string
	ProducerHandle string
	Slots          []AssetSlot
	MetadataValid  bool
	SubmitReady    bool
	ExpiresAt      time.Time
}

// SubmitReadiness reports whether a set of slots gates submission: every
// mandatory slot must be ok. Optional slots never block.
func SubmitReadiness(slots []AssetSlot) bool {
	for _, slot := range slots {
		if slot.Kind.Mandatory() && slot.Status != SlotStatusOK {
			return false
		}
	}
	return true
}
