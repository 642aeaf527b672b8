// Package youtube provides channel resolution, video listing, and metadata
// fetching against the YouTube Data API v3.
package youtube

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Sentinel errors for API operations.
var (
	ErrChannelNotFound   = errors.New("youtube: channel not found")
	ErrQuotaExceeded     = errors.New("youtube: api quota exceeded")
	ErrMalformedResponse = errors.New("youtube: malformed api response")
)

// channelIDRegex matches canonical channel IDs: "UC" followed by 22
// base64url characters, 24 characters total.
var channelIDRegex = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)

// IsChannelID reports whether s is already a canonical channel ID and
// therefore needs no search resolution.
func IsChannelID(s string) bool {
	return channelIDRegex.MatchString(s)
}

// Channel identifies a resolved channel.
type Channel struct {
	// ID is the canonical channel ID (e.g., "UCuAXFkgsw1L7xaCfnd5JJOw").
	ID string `json:"id"`

	// Title is the channel display name. Empty when the input was already
	// a channel ID and no lookup was performed.
	Title string `json:"title,omitempty"`
}

// URL returns the full YouTube URL for this channel.
func (c Channel) URL() string {
	return "https://www.youtube.com/channel/" + c.ID
}

// VideoDetail contains the full metadata record for a single video, mapped
// from the API's snippet, statistics, contentDetails, and status parts.
// Records are immutable once fetched.
type VideoDetail struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`

	// Title is the video title.
	Title string `json:"title"`

	// Description is the full, untruncated video description.
	Description string `json:"description"`

	// PublishedAt is when the video was published.
	PublishedAt time.Time `json:"published_at"`

	// ChannelID is the owning channel's ID.
	ChannelID string `json:"channel_id"`

	// ChannelTitle is the owning channel's display name.
	ChannelTitle string `json:"channel_title"`

	// Tags are the video's keywords. May be empty.
	Tags []string `json:"tags,omitempty"`

	// CategoryID is the numeric YouTube category identifier.
	CategoryID string `json:"category_id,omitempty"`

	// Duration is the raw ISO 8601 duration (e.g., "PT1M39S").
	Duration string `json:"duration,omitempty"`

	// Views, Likes, and Comments are nil when the API withholds the
	// statistics part entirely. A count hidden individually within a
	// present statistics part is indistinguishable from zero in the API
	// client's structs and reports 0.
	Views    *uint64 `json:"views,omitempty"`
	Likes    *uint64 `json:"likes,omitempty"`
	Comments *uint64 `json:"comments,omitempty"`

	// PrivacyStatus is "public", "unlisted", or "private".
	PrivacyStatus string `json:"privacy_status,omitempty"`

	// MadeForKids is nil when the API omits the status part.
	MadeForKids *bool `json:"made_for_kids,omitempty"`
}

// URL returns the full YouTube watch URL for this video.
func (v VideoDetail) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// APIError wraps a failed API call with context about what was being done.
// Use errors.As() to extract it:
//
//	var apiErr *youtube.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed with status %d\n", apiErr.Op, apiErr.StatusCode)
//	}
type APIError struct {
	// Op names the operation that failed ("search channel", "list uploads", ...).
	Op string
	// StatusCode is the HTTP status code, or 0 for transport-level failures.
	StatusCode int
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the API error.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("youtube: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("youtube: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }
