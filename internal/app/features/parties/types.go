// internal/app/features/parties/types.go
package parties

import (
	"github.com/dalemusser/guildroster/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createRequest is the POST / payload. GroupID and Slots are optional;
// slot entries may be the empty string for an open slot.
type createRequest struct {
	Name         string   `json:"name"`
	ActivityType string   `json:"activity_type"`
	GroupID      string   `json:"group_id"`
	Slots        []string `json:"slots"`
}

// editRequest is the PATCH /{partyID} payload. Nil fields are untouched;
// a non-nil Slots replaces the whole slot array.
type editRequest struct {
	Name  *string   `json:"name"`
	Slots *[]string `json:"slots"`
}

// memberView is one resolved slot in the with-members response.
type memberView struct {
	Slot   int            `json:"slot"`
	Member *models.Member `json:"member"`
}

// withMembersResponse is the GET /{partyID}/members payload.
type withMembersResponse struct {
	Party   models.Party   `json:"party"`
	Members []memberView   `json:"members"`
	Leader  *models.Member `json:"leader,omitempty"`
}

// parseSlots converts hex slot ids ("" meaning empty) to object ids.
func parseSlots(raw []string) ([]primitive.ObjectID, bool) {
	out := make([]primitive.ObjectID, len(raw))
	for i, s := range raw {
		if s == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, false
		}
		out[i] = id
	}
	return out, true
}
