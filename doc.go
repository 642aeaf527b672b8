// Package ytdump exports the full video catalog of a YouTube channel,
// with comprehensive metadata, to CSV or JSON.
//
// Overview
//
// ytdump runs a single sequential pipeline against the YouTube Data API v3:
//
//   - Resolve a channel name or ID to a canonical channel ID
//   - List every video ID in the channel's uploads playlist (paginated)
//   - Fetch full metadata records in batches
//   - Flatten and serialize to CSV, or emit a JSON document
//
// Quick Start
//
// Dump a channel and write CSV:
//
//	ctx := context.Background()
//	client, err := youtube.NewClient(ctx, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := ytdump.Dump(ctx, client, "UCuAXFkgsw1L7xaCfnd5JJOw", 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	now := time.Now().UTC()
//	rows := make([]export.Row, 0, len(result.Videos))
//	for _, v := range result.Videos {
//		rows = append(rows, export.Flatten(v, now))
//	}
//	err = export.WriteCSV(os.Stdout, rows)
//
// A channel name works too; anything that does not match the canonical
// channel ID pattern is resolved through the search API:
//
//	result, err := ytdump.Dump(ctx, client, "veritasium", 0)
//
// Configuration
//
// The API key is read from the YT_API_KEY environment variable or a .env
// file in the working directory. The .env file may be a readable named pipe.
//
// Environment variables:
//
//   - YT_API_KEY: YouTube Data API v3 key
//   - YTDUMP_ENV_FILE: alternate dotenv path (default ".env")
//   - YTDUMP_REQUEST_TIMEOUT: per-request timeout
//   - YTDUMP_MAX_VIDEOS: cap on exported videos (0 = all)
//
// Error Handling
//
// All failures are terminal; nothing is retried. Checking for sentinel
// errors:
//
//	if errors.Is(err, ytdump.ErrQuotaExceeded) {
//		fmt.Println("Quota exhausted, try again tomorrow")
//	}
//
// Extracting wrapped error details:
//
//	var apiErr *ytdump.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed: status %d\n", apiErr.Op, apiErr.StatusCode)
//	}
//
// Sub-packages:
//
//   - youtube: channel resolution, paginated listing, batched detail fetching
//   - export: flattening, CSV and JSON serialization
//   - config: API key and runtime configuration
//   - http: outbound HTTP client construction
package ytdump
