// internal/app/features/assignments/types.go
package assignments

// assignRequest is the POST / payload. SlotIndex nil means the engine
// picks the slot.
type assignRequest struct {
	MemberID     string `json:"member_id"`
	PartyID      string `json:"party_id"`
	ActivityType string `json:"activity_type"`
	SlotIndex    *int   `json:"slot_index"`
	IsLeader     bool   `json:"is_leader"`
}

// removeRequest is the POST /remove payload.
type removeRequest struct {
	MemberID     string `json:"member_id"`
	PartyID      string `json:"party_id"`
	ActivityType string `json:"activity_type"`
}

// swapRequest is the POST /swap payload. The slot fields are optional
// declarations of where the caller believes each member sits; when present
// they are verified against the roster before anything moves.
type swapRequest struct {
	Member1ID    string `json:"member1_id"`
	Member2ID    string `json:"member2_id"`
	Slot1        *int   `json:"slot1"`
	Slot2        *int   `json:"slot2"`
	ActivityType string `json:"activity_type"`
}

// clearAllRequest is the POST /clear-all payload.
type clearAllRequest struct {
	ActivityType string `json:"activity_type"`
}
