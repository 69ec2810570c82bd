// internal/app/features/members/types.go
package members

// createRequest is the POST / payload.
type createRequest struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
	Notes string `json:"notes"`
}

// editRequest is the PATCH /{memberID} payload. Nil fields are untouched.
// Assignments are not editable here; they are owned by the assignment
// engine.
type editRequest struct {
	Name  *string `json:"name"`
	Class *string `json:"class"`
	Level *int    `json:"level"`
	Notes *string `json:"notes"`
}
