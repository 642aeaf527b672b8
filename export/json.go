package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"ytdump/youtube"
)

// Document is the top-level JSON export shape. Unlike the CSV export, the
// videos carry full, untruncated metadata records.
type Document struct {
	ChannelID   string                `json:"channel_id"`
	TotalVideos int                   `json:"total_videos"`
	ExportedAt  time.Time             `json:"exported_at"`
	Videos      []youtube.VideoDetail `json:"videos"`
}

// NewDocument assembles an export document for a channel.
func NewDocument(channelID string, videos []youtube.VideoDetail, exportedAt time.Time) Document {
	if videos == nil {
		videos = []youtube.VideoDetail{}
	}
	return Document{
		ChannelID:   channelID,
		TotalVideos: len(videos),
		ExportedAt:  exportedAt.UTC(),
		Videos:      videos,
	}
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	// A channel with zero videos still serializes with "videos": [].
	if doc.Videos == nil {
		doc.Videos = []youtube.VideoDetail{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}
