package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed 14-column CSV schema.
var csvHeader = []string{
	"Video ID", "Title", "URL", "Published Date", "Age (days)",
	"Duration", "Views", "Likes", "Comments", "Description",
	"Tags", "Category", "Privacy Status", "Made for Kids",
}

// WriteCSV writes the header and one record per row. An empty row slice
// produces a header-only document.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.VideoID,
			row.Title,
			row.URL,
			row.PublishedDate,
			strconv.Itoa(row.AgeDays),
			row.Duration,
			row.Views,
			row.Likes,
			row.Comments,
			row.Description,
			row.Tags,
			row.Category,
			row.PrivacyStatus,
			row.MadeForKids,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
