package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// quotaReasons are the googleapi error reasons that indicate the daily
// quota or request rate for the key has been exceeded.
var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"dailyLimitExceeded":    true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
}

// mapAPIError classifies an error returned by the generated API client.
// Quota exhaustion maps to ErrQuotaExceeded; everything else is wrapped in
// an APIError carrying the operation name and HTTP status.
func mapAPIError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if isQuotaError(gerr) {
			return fmt.Errorf("%s: %w: %s", op, ErrQuotaExceeded, gerr.Message)
		}
		return &APIError{Op: op, StatusCode: gerr.Code, Err: err}
	}
	return &APIError{Op: op, Err: err}
}

func isQuotaError(gerr *googleapi.Error) bool {
	for _, item := range gerr.Errors {
		if quotaReasons[item.Reason] {
			return true
		}
	}
	// Some quota denials carry no structured reason, only a message.
	return gerr.Code == http.StatusForbidden && strings.Contains(strings.ToLower(gerr.Message), "quota")
}
