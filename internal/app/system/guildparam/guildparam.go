// internal/app/system/guildparam/guildparam.go

// Package guildparam resolves the guild (tenant) id that scopes every
// roster route.
package guildparam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FromRequest parses the {guildID} URL parameter.
func FromRequest(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "guildID"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
