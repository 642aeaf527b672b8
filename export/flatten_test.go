package export

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"ytdump/youtube"
)

func uint64p(n uint64) *uint64 { return &n }
func boolp(b bool) *bool       { return &b }

func sampleDetail() youtube.VideoDetail {
	return youtube.VideoDetail{
		ID:            "dQw4w9WgXcQ",
		Title:         "Test Video",
		Description:   "A short description.",
		PublishedAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		ChannelID:     "UCuAXFkgsw1L7xaCfnd5JJOw",
		ChannelTitle:  "Test Channel",
		Tags:          []string{"music", "classic"},
		CategoryID:    "10",
		Duration:      "PT3M33S",
		Views:         uint64p(1000000),
		Likes:         uint64p(50000),
		Comments:      uint64p(2000),
		PrivacyStatus: "public",
		MadeForKids:   boolp(false),
	}
}

func TestFlatten(t *testing.T) {
	exportedAt := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	row := Flatten(sampleDetail(), exportedAt)

	if row.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", row.VideoID)
	}
	if row.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("URL = %q, want derived watch URL", row.URL)
	}
	if row.PublishedDate != "2024-01-01T12:00:00Z" {
		t.Errorf("PublishedDate = %q, want RFC3339", row.PublishedDate)
	}
	if row.AgeDays != 10 {
		t.Errorf("AgeDays = %d, want 10", row.AgeDays)
	}
	if row.Duration != "3:33" {
		t.Errorf("Duration = %q, want 3:33", row.Duration)
	}
	if row.Views != "1000000" || row.Likes != "50000" || row.Comments != "2000" {
		t.Errorf("counts = %q/%q/%q", row.Views, row.Likes, row.Comments)
	}
	if row.Tags != "music, classic" {
		t.Errorf("Tags = %q, want joined with comma-space", row.Tags)
	}
	if row.MadeForKids != "false" {
		t.Errorf("MadeForKids = %q, want false", row.MadeForKids)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	exportedAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	detail := sampleDetail()

	first := Flatten(detail, exportedAt)
	second := Flatten(detail, exportedAt)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Flatten is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestFlattenMissingFields(t *testing.T) {
	detail := sampleDetail()
	detail.Description = ""
	detail.Tags = nil
	detail.CategoryID = ""
	detail.Views = nil
	detail.Likes = nil
	detail.Comments = nil
	detail.MadeForKids = nil
	detail.Duration = ""

	row := Flatten(detail, time.Now().UTC())

	if row.Duration != "0:00" {
		t.Errorf("Duration = %q, want 0:00 for a missing duration", row.Duration)
	}

	if row.Description != "No description" {
		t.Errorf("Description = %q, want placeholder", row.Description)
	}
	if row.Tags != "" {
		t.Errorf("Tags = %q, want empty", row.Tags)
	}
	if row.Category != "N/A" {
		t.Errorf("Category = %q, want N/A", row.Category)
	}
	if row.Views != "N/A" || row.Likes != "N/A" || row.Comments != "N/A" {
		t.Errorf("counts = %q/%q/%q, want N/A", row.Views, row.Likes, row.Comments)
	}
	if row.MadeForKids != "N/A" {
		t.Errorf("MadeForKids = %q, want N/A", row.MadeForKids)
	}
}

func TestFlattenTruncation(t *testing.T) {
	detail := sampleDetail()
	detail.Description = strings.Repeat("d", 600)
	detail.Tags = []string{strings.Repeat("t", 300)}

	row := Flatten(detail, time.Now().UTC())

	if len(row.Description) != 500 {
		t.Errorf("Description length = %d, want exactly 500", len(row.Description))
	}
	if !strings.HasSuffix(row.Description, "...") {
		t.Error("truncated Description should end with ellipsis")
	}
	if len(row.Tags) != 200 {
		t.Errorf("Tags length = %d, want exactly 200", len(row.Tags))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		want    string
		wantLen int
	}{
		{"shorter than limit", "short", 10, "short", 5},
		{"exactly at limit", "1234567890", 10, "1234567890", 10},
		{"over limit", "12345678901", 10, "1234567...", 10},
		{"multibyte runes kept whole", strings.Repeat("é", 12), 10, strings.Repeat("é", 7) + "...", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if n := len([]rune(got)); n != tt.wantLen {
				t.Errorf("rune length = %d, want %d", n, tt.wantLen)
			}
		})
	}
}

func TestAgeDays(t *testing.T) {
	published := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		exportedAt time.Time
		want       int
	}{
		{"same instant", published, 0},
		{"under a day", published.Add(23 * time.Hour), 0},
		{"exactly ten days", published.AddDate(0, 0, 10), 10},
		{"partial day floors", published.Add(10*24*time.Hour + 5*time.Hour), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ageDays(published, tt.exportedAt); got != tt.want {
				t.Errorf("ageDays() = %d, want %d", got, tt.want)
			}
		})
	}
}
