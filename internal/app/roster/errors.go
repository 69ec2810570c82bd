// internal/app/roster/errors.go
package roster

import "errors"

var (
	// ErrNotFound is returned when a referenced group, party, or member id
	// does not exist for the guild.
	ErrNotFound = errors.New("roster: not found")

	// ErrGroupFull is returned when a group already owns the maximum number
	// of parties.
	ErrGroupFull = errors.New("roster: group already has the maximum number of parties")

	// ErrPartyFull is returned by Assign when no empty non-leader slot
	// remains in the target party.
	ErrPartyFull = errors.New("roster: party has no open slot")

	// ErrInvalidSlotCount is returned when a supplied slot array is longer
	// than the fixed party size.
	ErrInvalidSlotCount = errors.New("roster: slot array exceeds party size")

	// ErrInvalidSlotIndex is returned when an explicit slot index is outside
	// the 0..4 range.
	ErrInvalidSlotIndex = errors.New("roster: slot index out of range")

	// ErrActivityMismatch is returned when a party's activity type does not
	// match its owning group's.
	ErrActivityMismatch = errors.New("roster: activity type does not match group")

	// ErrPositionMismatch is returned by Swap when a caller-declared slot
	// position disagrees with the member's discovered position. Callers
	// holding a stale view of the roster fail loudly instead of having
	// their request silently reinterpreted.
	ErrPositionMismatch = errors.New("roster: declared position does not match current position")
)
