// Package export flattens video metadata into tabular rows and serializes
// them to CSV or JSON.
package export

import (
	"strconv"
	"strings"
	"time"

	"ytdump/youtube"
)

const (
	// maxDescriptionLen caps the description column, ellipsis included.
	maxDescriptionLen = 500

	// maxTagsLen caps the joined tags column, ellipsis included.
	maxTagsLen = 200

	tagSeparator = ", "

	notAvailable = "N/A"
)

// Row is the flattened, display-oriented projection of a VideoDetail.
// Field order matches the CSV column order.
type Row struct {
	VideoID       string `json:"video_id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	AgeDays       int    `json:"age_days"`
	Duration      string `json:"duration"`
	Views         string `json:"views"`
	Likes         string `json:"likes"`
	Comments      string `json:"comments"`
	Description   string `json:"description"`
	Tags          string `json:"tags"`
	Category      string `json:"category"`
	PrivacyStatus string `json:"privacy_status"`
	MadeForKids   string `json:"made_for_kids"`
}

// Flatten projects one VideoDetail onto one Row. It is a pure function of
// its inputs: flattening the same detail with the same export time always
// yields an identical row.
func Flatten(v youtube.VideoDetail, exportedAt time.Time) Row {
	description := v.Description
	if description == "" {
		description = "No description"
	}

	duration := v.Duration
	if duration == "" {
		duration = "PT0S"
	}

	return Row{
		VideoID:       v.ID,
		Title:         v.Title,
		URL:           v.URL(),
		PublishedDate: v.PublishedAt.UTC().Format(time.RFC3339),
		AgeDays:       ageDays(v.PublishedAt, exportedAt),
		Duration:      FormatDuration(duration),
		Views:         formatCount(v.Views),
		Likes:         formatCount(v.Likes),
		Comments:      formatCount(v.Comments),
		Description:   Truncate(description, maxDescriptionLen),
		Tags:          Truncate(strings.Join(v.Tags, tagSeparator), maxTagsLen),
		Category:      orNA(v.CategoryID),
		PrivacyStatus: orNA(v.PrivacyStatus),
		MadeForKids:   formatBool(v.MadeForKids),
	}
}

// ageDays is the number of whole days elapsed between publication and the
// export time.
func ageDays(published, exportedAt time.Time) int {
	return int(exportedAt.Sub(published) / (24 * time.Hour))
}

// Truncate shortens s to at most max characters, replacing the tail with an
// ellipsis so the result is exactly max characters long when truncation
// happens. Counting is rune-based to avoid splitting multibyte characters.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	const ellipsis = "..."
	return string(runes[:max-len(ellipsis)]) + ellipsis
}

func formatCount(n *uint64) string {
	if n == nil {
		return notAvailable
	}
	return strconv.FormatUint(*n, 10)
}

func formatBool(b *bool) string {
	if b == nil {
		return notAvailable
	}
	return strconv.FormatBool(*b)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
