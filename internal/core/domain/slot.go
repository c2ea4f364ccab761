package domain

// SlotKind names one upload target within a beat upload session
type SlotKind string

const (
	SlotCover SlotKind = "cover"
	SlotMP3   SlotKind = "mp3"
	SlotWAV   SlotKind = "wav"
	SlotStems SlotKind = "stems"
)

// SlotKinds lists every slot of a session, mandatory ones first
var SlotKinds = []SlotKind{SlotCover, SlotMP3, SlotWAV, SlotStems}

// Valid reports whether k is a known slot kind
func (k SlotKind) Valid() bool {
	switch k {
	case SlotCover, SlotMP3, SlotWAV, SlotStems:
		return true
	}
	return false
}

// Mandatory reports whether the slot must be ok before submission
func (k SlotKind) Mandatory() bool {
	return k != SlotStems
}

// SlotStatus represents the state of an asset slot
type SlotStatus string

const (
	SlotStatusIdle      SlotStatus = "idle"
	SlotStatusUploading SlotStatus = "uploading"
	SlotStatusOK        SlotStatus = "ok"
	SlotStatusError     SlotStatus = "error"
)

// AssetSlot tracks one upload target through its lifecycle. All transitions
// go through the methods below, which keep RemoteURL and Status in lockstep:
// RemoteURL is non-empty exactly while Status is ok. Attempt grows on every
// BeginUpload so a completion arriving for a superseded attempt can be told
// apart and dropped.
type AssetSlot struct {
	Kind      SlotKind
	Status    SlotStatus
	Filename  string
	RemoteURL string
	LastError string
	Attempt   uint64
}

// NewAssetSlot creates an idle slot
func NewAssetSlot(kind SlotKind) *AssetSlot {
	return &AssetSlot{Kind: kind, Status: SlotStatusIdle}
}

// BeginUpload moves the slot to uploading and returns the attempt number the
// upload must present on completion. An ok slot must be cleared first, so a
// failed re-upload can never leave a stale URL behind.
func (s *AssetSlot) BeginUpload(filename string) (uint64, error) {
	switch s.Status {
	case SlotStatusUploading:
		return 0, ErrUploadInFlight
	case SlotStatusOK:
		return 0, ErrSlotOccupied
	}

	s.Status = SlotStatusUploading
	s.Filename = filename
	s.RemoteURL = ""
	s.LastError = ""
	s.Attempt++
	return s.Attempt, nil
}

// CompleteUpload records the durable URL for the given attempt. It reports
// false when the attempt has been superseded (slot cleared or re-assigned
// while the upload was in flight); the result must then be discarded.
func (s *AssetSlot) CompleteUpload(attempt uint64, url string) bool {
	if s.Status != SlotStatusUploading || s.Attempt != attempt {
		return false
	}
	s.Status = SlotStatusOK
	s.RemoteURL = url
	return true
}

// FailUpload records a failed attempt. Stale attempts are ignored.
func (s *AssetSlot) FailUpload(attempt uint64, cause error) bool {
	if s.Status != SlotStatusUploading || s.Attempt != attempt {
		return false
	}
	s.Status = SlotStatusError
	s.RemoteURL = ""
	if cause != nil {
		s.LastError = cause.Error()
	}
	return true
}

// Clear resets an ok or error slot back to idle and returns the URL that was
// recorded, if any, so the caller can reclaim the remote object. Clearing a
// slot with an upload in flight is refused; clearing an idle slot is a no-op.
func (s *AssetSlot) Clear() (string, error) {
	if s.Status == SlotStatusUploading {
		return "", ErrUploadInFlight
	}

	url := s.RemoteURL
	s.Status = SlotStatusIdle
	s.Filename = ""
	s.RemoteURL = ""
	s.LastError = ""
	// Attempt is deliberately not reset: in-flight completions from before
	// the clear must still be recognizable as stale.
	s.Attempt++
	return url, nil
}
