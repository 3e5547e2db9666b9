package entity

import "github.com/google/uuid"

type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`

	// FamilyID is nil until the user joins or creates a family.
	FamilyID *uuid.UUID `json:"family_id,omitempty"`

	// Favorites is a set of photo ids, private to this user.
	Favorites []uuid.UUID `json:"favorites,omitempty"`
}
