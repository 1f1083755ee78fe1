package models

import (
	"fmt"
	"time"
)

// Ship is a like-able record for a hypothetical pairing between two users.
type Ship struct {
	PersonA   string    `json:"person_a"`
	PersonB   string    `json:"person_b"`
	Likes     int64     `json:"likes"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ShipKey builds the directional storage key for a pair. The key keeps the
// creation argument order, so ShipKey(a, b) and ShipKey(b, a) address
// different records.
func ShipKey(personA, personB string) string {
	return fmt.Sprintf("%s-%s", personA, personB)
}
