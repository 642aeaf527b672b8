package export

import (
	"fmt"
	"regexp"
	"strconv"
)

// isoDurationRegex matches ISO 8601 durations as returned by the API, e.g.
// "PT1M39S", "PT1H2M3S", "P1DT2H". Weeks are not emitted by the API.
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseISODuration converts an ISO 8601 duration into total seconds.
// Days (and the rare year/month components) are folded into hours. The
// second return value is false when the input does not parse.
func parseISODuration(s string) (int64, bool) {
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, false
	}

	years := parseComponent(m[1])
	months := parseComponent(m[2])
	days := parseComponent(m[3])
	hours := parseComponent(m[4])
	minutes := parseComponent(m[5])
	seconds := parseComponent(m[6])

	days += years*365 + months*30
	return ((days*24+hours)*60+minutes)*60 + seconds, true
}

func parseComponent(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatDuration renders an ISO 8601 duration as M:SS, or H:MM:SS when the
// duration reaches an hour. Unparseable input is returned unchanged.
func FormatDuration(iso string) string {
	total, ok := parseISODuration(iso)
	if !ok {
		return iso
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
