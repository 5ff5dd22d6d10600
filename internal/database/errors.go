package database

// StoreError is returned by the roster store for outcomes that callers are
// expected to handle. Anything else coming out of the store is an unexpected
// backend failure.
type StoreError string

// Error implements the error interface
func (e StoreError) Error() string {
	return string(e)
}

const (
	ErrInvalidInput   StoreError = "invalid input"
	ErrLobbyNotFound  StoreError = "lobby not found"
	ErrSlotTaken      StoreError = "this role in the team is already taken"
	ErrAlreadyInLobby StoreError = "player already holds a slot in this lobby"
	ErrNotInLobby     StoreError = "player not found in lobby"
	ErrSlotEmpty      StoreError = "no player found in this position"
	ErrNilConfig      StoreError = "config cannot be nil"
)
