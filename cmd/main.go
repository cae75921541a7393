// Command peakline scores a batch of activity records and prints the
// enriched analyses plus the user summary as JSON. It stands in for the
// ingestion pipeline that normally calls the engine.
//
// Usage:
//
//	peakline [-summary-only] [activities.json]
//
// The input is a JSON array of activity records; "-" or no argument reads
// from stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	service "github.com/peakline/peakline/internal/app"
	"github.com/peakline/peakline/internal/config"
	"github.com/peakline/peakline/internal/domain/model"
	"github.com/peakline/peakline/internal/domain/summary"
	"github.com/peakline/peakline/pkg/logger"
)

type output struct {
	Activities  []map[string]any     `json:"activities,omitempty"`
	UserSummary *summary.UserSummary `json:"user_summary,omitempty"`
}

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	summaryOnly := flag.Bool("summary-only", false, "print only the user summary")
	flag.Parse()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	log := logger.Get()

	ctx := context.Background()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	records, err := readRecords(flag.Arg(0))
	if err != nil {
		return err
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithConfig(cfg),
	)

	activities := make([]model.Activity, 0, len(records))
	enriched := make([]map[string]any, 0, len(records))
	for _, record := range records {
		activities = append(activities, model.FromRecord(record))
		enriched = append(enriched, svc.EnrichAnalysis(ctx, map[string]any{"details": record}))
	}

	out := output{
		UserSummary: svc.SummarizeAthlete(ctx, activities),
	}
	if !*summaryOnly {
		out.Activities = enriched
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// readRecords decodes a JSON array of activity records from the given file,
// or from stdin when the path is empty or "-".
func readRecords(path string) ([]map[string]any, error) {
	var reader io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var records []map[string]any
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}
	return records, nil
}
