package models

import (
	"fmt"
	"time"
)

// Marriage represents an active marriage between two users. Destroyed by
// divorce; AnniversariesCelebrated only ever grows.
type Marriage struct {
	PersonA                 string    `json:"person_a"`
	PersonB                 string    `json:"person_b"`
	MarriedAt               time.Time `json:"married_at"`
	AnniversariesCelebrated int       `json:"anniversaries_celebrated"`
	Honeymoon               bool      `json:"honeymoon"`
	Gifts                   []string  `json:"gifts"`
}

// SpouseOf returns the other party of the marriage, or "" if userID is not a
// party to it.
func (m *Marriage) SpouseOf(userID string) string {
	switch userID {
	case m.PersonA:
		return m.PersonB
	case m.PersonB:
		return m.PersonA
	}
	return ""
}

// Involves reports whether userID is a party to the marriage.
func (m *Marriage) Involves(userID string) bool {
	return m.PersonA == userID || m.PersonB == userID
}

// MarriageID derives the storage key for a new marriage record.
func MarriageID(proposerID, accepterID string, marriedAt time.Time) string {
	return fmt.Sprintf("%s-%s-%d", proposerID, accepterID, marriedAt.Unix())
}
