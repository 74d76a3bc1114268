package posts

import (
	"time"

	"PickMe/internal/core/users"
)

// Audience controls who can see a post
// Closed enumeration: every switch over it must carry a fail-closed default,
// so an unrecognized value stored in the database hides the post rather than
// exposing it.
type Audience string

const (
	// AudienceOnlyMe restricts the post to its author
	AudienceOnlyMe Audience = "only_me"

	// AudienceGroups restricts the post to members of the post's audience
	// groups (all owned by the author, enforced at write time)
	AudienceGroups Audience = "groups"

	// AudienceEveryone makes the post visible to all authenticated users
	AudienceEveryone Audience = "everyone"
)

// Valid reports whether the audience value is one of the known modes
func (a Audience) Valid() bool {
	switch a {
	case AudienceOnlyMe, AudienceGroups, AudienceEveryone:
		return true
	}
	return false
}

// Content types
const (
	ContentTypeText  = "text"
	ContentTypeMedia = "media"
)

// Media types
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
	MediaTypeLink  = "link"
)

// Post represents a post row plus its audience group set
// AudienceGroupIDs is only populated when Audience is AudienceGroups; every
// group in it is owned by the author (write-time invariant, relied upon by
// the visibility engine and not re-checked per view).
type Post struct {
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
	ContentType      string    `json:"contentType" db:"content_type"`
	TextContent      string    `json:"textContent" db:"text_content"`
	MediaURL         string    `json:"mediaUrl,omitempty" db:"media_url"`
	MediaType        string    `json:"mediaType,omitempty" db:"media_type"`
	Audience         Audience  `json:"audience" db:"audience"`
	AudienceGroupIDs []int64   `json:"audienceGroups,omitempty"`
	ID               int64     `json:"id" db:"id"`
	AuthorID         int64     `json:"authorId" db:"author_id"`
}

// PostView is a post enriched for display: author profile, like state for
// the viewer, and like count
type PostView struct {
	Post
	Author    users.UserView `json:"author"`
	LikeCount int            `json:"likeCount"`
	Liked     bool           `json:"liked"`
	IsOwn     bool           `json:"isOwn"`
}

// CreatePostRequest represents input for creating a post
// AuthorID is derived from the authenticated user, never from the client.
type CreatePostRequest struct {
	ContentType      string   `json:"contentType"`
	TextContent      string   `json:"textContent"`
	MediaURL         string   `json:"mediaUrl"`
	MediaType        string   `json:"mediaType"`
	Audience         Audience `json:"audience"`
	AudienceGroupIDs []int64  `json:"audienceGroups"`
	AuthorID         int64    `json:"-"`
}

// UpdatePostRequest represents a partial update to a post
// Nil fields keep their current value. Setting Audience to AudienceGroups
// without AudienceGroupIDs keeps the existing group set.
type UpdatePostRequest struct {
	TextContent      *string   `json:"textContent,omitempty"`
	Audience         *Audience `json:"audience,omitempty"`
	AudienceGroupIDs *[]int64  `json:"audienceGroups,omitempty"`
}
