package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// FileType is the coarse classification of an attachment.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeDocument FileType = "document"
	FileTypeOther    FileType = "other"
)

// Complaint is a user-authored incident report post.
type Complaint struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Text      null.String `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

// ComplaintFile is an attachment stored alongside its parent complaint.
type ComplaintFile struct {
	ID          uuid.UUID `json:"-"`
	ComplaintID uuid.UUID `json:"complaint_id"`
	FileURL     string    `json:"file_url"`
	FileType    FileType  `json:"file_type"`
}

// FeedAuthor is the author summary attached to each feed post. IsFollowing
// is nil on the viewer's own feed, where it carries no meaning.
type FeedAuthor struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Username        string      `json:"username"`
	ProfileImageURL null.String `json:"profile_image_url"`
	IsFollowing     *bool       `json:"is_following,omitempty"`
}

// FeedFile is an attachment as serialized in a feed response, with its
// path normalized to a client-consumable URL.
type FeedFile struct {
	FileURL  string   `json:"file_url"`
	FileType FileType `json:"file_type"`
}

// FeedPost is a complaint denormalized for the viewer: aggregate counts,
// viewer-relative booleans, author summary and attached files.
type FeedPost struct {
	ID          uuid.UUID   `json:"id"`
	TextContent null.String `json:"text_content"`
	CreatedAt   time.Time   `json:"created_at"`
	Likes       int64       `json:"likes"`
	Comments    int64       `json:"comments"`
	Reposts     int64       `json:"reposts"`
	Liked       bool        `json:"liked"`
	Saved       bool        `json:"saved"`
	Reposted    bool        `json:"reposted"`
	User        FeedAuthor  `json:"user"`
	Files       []FeedFile  `json:"files"`
}
