package roster

import (
	"errors"

	"github.com/jason-s-yu/roster/internal/database"
)

// Error is a roster rule violation detected by the engine itself.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrLobbyClosed Error = "lobby is closed"
	ErrNilConfig   Error = "config cannot be nil"
	ErrNilStore    Error = "store cannot be nil"
)

// Outcomes decided by the store, re-exported so callers only import roster.
const (
	ErrInvalidInput   = database.ErrInvalidInput
	ErrLobbyNotFound  = database.ErrLobbyNotFound
	ErrSlotTaken      = database.ErrSlotTaken
	ErrAlreadyInLobby = database.ErrAlreadyInLobby
	ErrNotInLobby     = database.ErrNotInLobby
	ErrSlotEmpty      = database.ErrSlotEmpty
)

// ErrorKind groups engine errors by how a caller should react to them.
type ErrorKind int

const (
	// KindStorage is an unexpected backend failure.
	KindStorage ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "storage"
	}
}

// Kind classifies a non-nil error returned by the engine.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrLobbyNotFound),
		errors.Is(err, ErrNotInLobby),
		errors.Is(err, ErrSlotEmpty):
		return KindNotFound
	case errors.Is(err, ErrSlotTaken),
		errors.Is(err, ErrAlreadyInLobby),
		errors.Is(err, ErrLobbyClosed):
		return KindConflict
	default:
		return KindStorage
	}
}

// isOutcome reports whether err is one of the named roster outcomes rather than
// a backend failure.
func isOutcome(err error) bool {
	var storeErr database.StoreError
	var rosterErr Error
	return errors.As(err, &storeErr) || errors.As(err, &rosterErr)
}
