package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Controllers, stores and adapters
// return these (optionally wrapped) so services can translate them into
// domain errors.
//
//   - ErrNotFound: document or record does not exist
//   - ErrConflict: concurrent modification of the same record
//   - ErrInvalidState: document is in the wrong lifecycle state for the operation
//   - ErrUnavailable: wallet engine or backing store temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
