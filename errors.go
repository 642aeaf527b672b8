package ytdump

import (
	"ytdump/config"
	"ytdump/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytdump.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var apiErr *ytdump.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed with status %d\n", apiErr.Op, apiErr.StatusCode)
//	}

// APIError wraps a failed YouTube Data API call with the operation name and
// HTTP status code.
type APIError = youtube.APIError

// Sentinel errors exported from sub-packages.
var (
	// ErrAPIKeyMissing indicates no API key was found in the environment
	// or the env file.
	ErrAPIKeyMissing = config.ErrAPIKeyMissing
	// ErrChannelNotFound indicates the channel could not be resolved or
	// does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrQuotaExceeded indicates the API declined the request because the
	// key's quota is exhausted.
	ErrQuotaExceeded = youtube.ErrQuotaExceeded
	// ErrMalformedResponse indicates an API response was missing required
	// fields or failed to parse.
	ErrMalformedResponse = youtube.ErrMalformedResponse
)
