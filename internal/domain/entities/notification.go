package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NotificationPost is a followed-user post as it appears in the activity
// digest: at most one representative file, no counts or flags.
type NotificationPost struct {
	ID        uuid.UUID   `json:"id"`
	Text      null.String `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
	File      null.String `json:"file"`
	User      FeedAuthor  `json:"user"`
}

// NotificationDigest buckets recent followed-user posts by age. "New" holds
// posts from the last hour, "Today" the rest of the current calendar day.
type NotificationDigest struct {
	New   []*NotificationPost `json:"new"`
	Today []*NotificationPost `json:"today"`
}
