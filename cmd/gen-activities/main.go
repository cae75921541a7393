// Command gen-activities writes a JSON array of synthetic activity records
// suitable as input for the peakline command.
//
// Usage:
//
//	gen-activities [-count N] [-out activities.json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/peakline/peakline/internal/synth"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	count := flag.Int("count", 12, "number of activities to generate")
	out := flag.String("out", "-", "output file, - for stdout")
	flag.Parse()

	if *count <= 0 {
		return fmt.Errorf("count must be positive, got %d", *count)
	}

	writer := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		writer = f
	}

	activities := synth.NewGenerator().Generate(*count)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(activities); err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}
	return nil
}
