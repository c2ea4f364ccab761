package domain

import "errors"

// ErrStorage wraps any transport failure talking to the object store
var ErrStorage = errors.New("storage operation failed")

// ErrSourceRetained is returned when a move copied the object but could not
// delete the source, leaving it at both locations
var ErrSourceRetained = errors.New("move left source object in place")

// ErrSessionNotFound is an error thrown when an upload session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownSlotKind is an error thrown when a slot kind is not recognized
var ErrUnknownSlotKind = errors.New("unknown slot kind")

// ErrUploadInFlight is an error thrown when a slot already has an upload running
var ErrUploadInFlight = errors.New("upload already in flight for slot")

// ErrSlotOccupied is an error thrown when assigning to an ok slot that was not cleared
var ErrSlotOccupied = errors.New("slot holds an accepted upload, clear it first")

// ErrUploadSuperseded is an error thrown when an upload finished after its
// slot was cleared or its session discarded; the result is dropped
var ErrUploadSuperseded = errors.New("upload superseded")

// ErrSessionNotReady is an error thrown when submitting before every mandatory slot is ok
var ErrSessionNotReady = errors.New("session not ready for submission")

// ErrMetadataInvalid is an error thrown when the draft metadata failed validation
var ErrMetadataInvalid = errors.New("metadata invalid")

// ErrSubmitInFlight is an error thrown when a submission is already running
var ErrSubmitInFlight = errors.New("submission already in flight")

// ErrEncodeFailed is an error thrown when the external encoder reports failure
var ErrEncodeFailed = errors.New("encode failed")

// ErrBeatNotFound is an error thrown when a beat is not found
var ErrBeatNotFound = errors.New("beat not found")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrLicenseNameRequired is an error thrown when a license is created without a name
var ErrLicenseNameRequired = errors.New("license name is required")

// ErrFileSizeTooBig is an error thrown when an uploaded file exceeds the limit
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrTempoRequired is an error thrown when no tempo was provided
var ErrTempoRequired = errors.New("tempo is required")

// ErrTempoNotNumeric is an error thrown when the tempo does not parse as a number
var ErrTempoNotNumeric = errors.New("tempo must be numeric")

// ErrTempoTooSmall is an error thrown when the tempo is zero or negative
var ErrTempoTooSmall = errors.New("tempo must be greater than 0")

// ErrTempoTooBig is an error thrown when the tempo exceeds 999 BPM
var ErrTempoTooBig = errors.New("tempo must be at most 999")
