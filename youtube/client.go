package youtube

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	ytdumphttp "ytdump/http"
)

const (
	// pageSize is the maximum page size accepted by playlistItems.list.
	pageSize = 50

	// detailBatchSize is the maximum number of IDs accepted by videos.list.
	detailBatchSize = 50
)

// Client talks to the YouTube Data API v3. All calls are sequential; one
// request is in flight at a time and errors are surfaced without retry.
type Client struct {
	service *youtube.Service
}

// NewClient creates a Data API client authenticated with the given API key,
// using default HTTP settings. Additional options (custom endpoint, custom
// HTTP client) follow the key option and override it, which is how tests
// point the client at a fake server.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	return NewClientWithConfig(ctx, apiKey, nil, opts...)
}

// NewClientWithConfig is NewClient with explicit HTTP client settings
// (request timeout, user agent, connection pool). A nil httpCfg applies
// defaults.
func NewClientWithConfig(ctx context.Context, apiKey string, httpCfg *ytdumphttp.Config, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: api key required")
	}

	base := newBaseClient(apiKey, httpCfg)
	all := append([]option.ClientOption{option.WithHTTPClient(base)}, opts...)
	service, err := youtube.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{service: service}, nil
}

// newBaseClient builds the outbound HTTP client for API calls. The key is
// attached at the transport level so a pooled client from the http package
// can be used as the base.
func newBaseClient(apiKey string, httpCfg *ytdumphttp.Config) *http.Client {
	if httpCfg == nil {
		httpCfg = ytdumphttp.DefaultConfig()
	}
	base := ytdumphttp.New(httpCfg)
	base.Transport = &transport.APIKey{Key: apiKey, Transport: base.Transport}
	return base
}

// ResolveChannel turns a channel ID or a search term into a resolved Channel.
// Canonical channel IDs bypass the search API entirely.
func (c *Client) ResolveChannel(ctx context.Context, ref string) (Channel, error) {
	if IsChannelID(ref) {
		return Channel{ID: ref}, nil
	}

	call := c.service.Search.List([]string{"snippet"}).
		Q(ref).
		Type("channel").
		MaxResults(1).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return Channel{}, mapAPIError("search channel", err)
	}
	if len(resp.Items) == 0 {
		return Channel{}, fmt.Errorf("%w: no channel matches %q", ErrChannelNotFound, ref)
	}

	item := resp.Items[0]
	if item.Snippet == nil || item.Snippet.ChannelId == "" {
		return Channel{}, fmt.Errorf("%w: search result missing snippet", ErrMalformedResponse)
	}

	ch := Channel{ID: item.Snippet.ChannelId, Title: item.Snippet.Title}
	log.Printf("youtube: resolved %q to channel %q (%s)", ref, ch.Title, ch.ID)
	return ch, nil
}

// uploadsPlaylistID looks up the uploads playlist for a channel.
func (c *Client) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	call := c.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return "", mapAPIError("lookup uploads playlist", err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("%w: channel %s not found or not public", ErrChannelNotFound, channelID)
	}

	details := resp.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil || details.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("%w: channel %s has no uploads playlist", ErrMalformedResponse, channelID)
	}
	return details.RelatedPlaylists.Uploads, nil
}

// ListVideoIDs returns the IDs of all videos in the channel's uploads
// playlist, in API order (typically newest first), by following page
// tokens until none is returned. max limits the result when positive.
func (c *Client) ListVideoIDs(ctx context.Context, channelID string, max int) ([]string, error) {
	playlistID, err := c.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	var ids []string
	pageToken := ""
	for {
		call := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			return nil, mapAPIError("list uploads", err)
		}

		for _, item := range resp.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				return nil, fmt.Errorf("%w: playlist item missing video id", ErrMalformedResponse)
			}
			ids = append(ids, item.ContentDetails.VideoId)
		}

		if max > 0 && len(ids) >= max {
			ids = ids[:max]
			break
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

// FetchDetails fetches the full metadata record for every ID, batching
// requests at the API limit. Every requested ID is present exactly once in
// the result; ordering across batches is not guaranteed by the API.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]VideoDetail, error) {
	details := make([]VideoDetail, 0, len(ids))

	for start := 0; start < len(ids); start += detailBatchSize {
		end := start + detailBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails", "status"}).
			Id(ids[start:end]...).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			return nil, mapAPIError("fetch video details", err)
		}

		for _, item := range resp.Items {
			detail, err := videoDetailFromAPI(item)
			if err != nil {
				return nil, err
			}
			details = append(details, detail)
		}
	}

	return details, nil
}

// videoDetailFromAPI maps an API video resource onto a VideoDetail.
func videoDetailFromAPI(v *youtube.Video) (VideoDetail, error) {
	if v.Id == "" || v.Snippet == nil {
		return VideoDetail{}, fmt.Errorf("%w: video resource missing id or snippet", ErrMalformedResponse)
	}

	published, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt)
	if err != nil {
		return VideoDetail{}, fmt.Errorf("%w: video %s has bad publishedAt %q", ErrMalformedResponse, v.Id, v.Snippet.PublishedAt)
	}

	detail := VideoDetail{
		ID:           v.Id,
		Title:        v.Snippet.Title,
		Description:  v.Snippet.Description,
		PublishedAt:  published,
		ChannelID:    v.Snippet.ChannelId,
		ChannelTitle: v.Snippet.ChannelTitle,
		Tags:         v.Snippet.Tags,
		CategoryID:   v.Snippet.CategoryId,
	}

	if v.ContentDetails != nil {
		detail.Duration = v.ContentDetails.Duration
	}
	if v.Statistics != nil {
		views, likes, comments := v.Statistics.ViewCount, v.Statistics.LikeCount, v.Statistics.CommentCount
		detail.Views = &views
		detail.Likes = &likes
		detail.Comments = &comments
	}
	if v.Status != nil {
		detail.PrivacyStatus = v.Status.PrivacyStatus
		madeForKids := v.Status.MadeForKids
		detail.MadeForKids = &madeForKids
	}

	return detail, nil
}
