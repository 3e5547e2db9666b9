package entity

import (
	"time"

	"github.com/google/uuid"
)

type Family struct {
	ID uuid.UUID `json:"id"`

	Name      string `json:"name"`
	NameLower string `json:"name_lower"` // lowercase, for case-insensitive lookup

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	// Members only ever grows; the core never removes a member.
	Members []string `json:"members"`
}
