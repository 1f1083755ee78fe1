package models

import (
	"time"
)

// Gift is one entry in a user's received-gift inventory. Append-only.
type Gift struct {
	Name    string    `json:"name"`
	From    string    `json:"from"`
	GivenAt time.Time `json:"given_at"`
}
