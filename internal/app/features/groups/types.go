// internal/app/features/groups/types.go
package groups

// createRequest is the POST / payload.
type createRequest struct {
	Name         string `json:"name"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
}

// editRequest is the PATCH /{groupID} payload. Nil fields are untouched.
type editRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
