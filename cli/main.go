package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"ytdump"
	"ytdump/config"
	"ytdump/export"
	ytdumphttp "ytdump/http"
	"ytdump/youtube"
)

func main() {
	format := flag.String("format", "csv", "Output format: csv or json")
	output := flag.String("o", "", "Output file (default <channelID>_videos.csv for csv, stdout for json)")
	maxVideos := flag.Int("max", 0, "Maximum videos to export (0 = all)")
	timeout := flag.Duration("timeout", 15*time.Minute, "Overall deadline for the export")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	channelRef := flag.Arg(0)

	if *format != "csv" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Error: invalid -format value %q (use csv or json)\n", *format)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrAPIKeyMissing) {
			fmt.Fprintln(os.Stderr, "Error: YT_API_KEY not found in environment or .env file")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	max := *maxVideos
	if max == 0 {
		max = cfg.MaxVideos
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	httpCfg := ytdumphttp.DefaultConfig()
	httpCfg.Timeout = cfg.RequestTimeout

	client, err := youtube.NewClientWithConfig(ctx, cfg.APIKey, httpCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Fetching videos for %s...\n", channelRef)
	result, err := ytdump.Dump(ctx, client, channelRef, max)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Found %d videos on channel %s\n", len(result.Videos), result.Channel.ID)

	exportedAt := time.Now().UTC()

	switch *format {
	case "json":
		if err := writeJSON(result, exportedAt, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := writeCSV(result, exportedAt, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeCSV(result *ytdump.Result, exportedAt time.Time, path string) error {
	if path == "" {
		path = result.Channel.ID + "_videos.csv"
	}

	rows := make([]export.Row, 0, len(result.Videos))
	for _, v := range result.Videos {
		rows = append(rows, export.Flatten(v, exportedAt))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, rows); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "CSV data exported to %s\n", path)
	return nil
}

func writeJSON(result *ytdump.Result, exportedAt time.Time, path string) error {
	doc := export.NewDocument(result.Channel.ID, result.Videos, exportedAt)

	if path == "" {
		return export.WriteJSON(os.Stdout, doc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteJSON(f, doc); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "JSON data exported to %s\n", path)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytdump - export a YouTube channel's video metadata to CSV or JSON

Usage:
  ytdump [flags] <channel-id-or-name>

Flags:
  -format string    Output format: csv or json (default "csv")
  -o string         Output file (default <channelID>_videos.csv for csv, stdout for json)
  -max int          Maximum videos to export (0 = all)
  -timeout duration Overall deadline for the export (default 15m)

Examples:
  ytdump UCuAXFkgsw1L7xaCfnd5JJOw                # CSV to UCuAXFkgsw1L7xaCfnd5JJOw_videos.csv
  ytdump -format json veritasium                 # Resolve name, JSON to stdout
  ytdump -format json -o out.json veritasium     # JSON to file
  ytdump -max 100 UCuAXFkgsw1L7xaCfnd5JJOw       # Only the 100 most recent uploads

The API key is read from YT_API_KEY or a .env file in the working directory.
`)
}
