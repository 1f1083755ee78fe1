package models

import (
	"fmt"
	"time"
)

// Call represents an announced event with an open roster of confirmed
// attendees. The roster itself lives in Snapshot.Participants keyed by ID.
type Call struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Schedule    string    `json:"schedule"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	ChannelID   string    `json:"channel_id"`
	MessageID   string    `json:"message_id"`
	Emoji       string    `json:"emoji"`
	CreatedAt   time.Time `json:"created_at"`
}

// CallID derives the composite call identifier from the announcement channel
// and the creation time. Two calls created in the same channel within the
// same second collide; CreateCall rejects the second one.
func CallID(channelID string, createdAt time.Time) string {
	return fmt.Sprintf("%s-%d", channelID, createdAt.Unix())
}
