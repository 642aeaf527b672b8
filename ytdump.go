package ytdump

import (
	"context"
	"fmt"
	"sort"

	"ytdump/youtube"
)

// VideoSource is the API surface the pipeline needs. *youtube.Client
// implements it; tests substitute fakes.
type VideoSource interface {
	// ResolveChannel turns a channel ID or search term into a Channel.
	ResolveChannel(ctx context.Context, ref string) (youtube.Channel, error)

	// ListVideoIDs returns all video IDs in the channel's uploads,
	// limited to max when positive.
	ListVideoIDs(ctx context.Context, channelID string, max int) ([]string, error)

	// FetchDetails fetches one VideoDetail per ID.
	FetchDetails(ctx context.Context, ids []string) ([]youtube.VideoDetail, error)
}

// Result holds the outcome of a channel dump.
type Result struct {
	// Channel is the resolved channel.
	Channel youtube.Channel

	// Videos are the full metadata records, sorted newest first.
	Videos []youtube.VideoDetail
}

// Dump runs the export pipeline: resolve the channel, list every upload,
// fetch full metadata in batches, and sort newest first. Each stage runs
// sequentially on the complete output of the previous one; errors are
// surfaced without retry.
func Dump(ctx context.Context, src VideoSource, channelRef string, maxVideos int) (*Result, error) {
	channel, err := src.ResolveChannel(ctx, channelRef)
	if err != nil {
		return nil, fmt.Errorf("resolve channel: %w", err)
	}

	ids, err := src.ListVideoIDs(ctx, channel.ID, maxVideos)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	videos, err := src.FetchDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch details: %w", err)
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})

	return &Result{Channel: channel, Videos: videos}, nil
}
