package cgi

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joshyou/comp-bio/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Island is one reported CpG island. Start and End are 1-based inclusive
// coordinates in the cleaned sequence.
type Island struct {
	Start int `json:"start"`

	End int `json:"end"`

	Length int `json:"length"`

	// GC is the island's G+C fraction
	GC float64 `json:"gc"`

	// ObsExpCpG is the island's observed/expected CpG ratio
	ObsExpCpG float64 `json:"obsExpCpG"`
}

// Result holds the islands located in one input record.
type Result struct {
	// Target's name. In >example_contig FASTA its "example_contig"
	Target string `json:"target"`

	// Length of the cleaned target sequence
	Length int `json:"length"`

	// PathLogProb is the log probability of the decoded state path
	PathLogProb float64 `json:"pathLogProb"`

	// Islands found in the target
	Islands []Island `json:"islands"`
}

// FindCmd locates CpG islands in the sequence(s) passed via flags.
func FindCmd(cmd *cobra.Command, args []string) {
	fs, conf := parseCmdFlags(cmd, args)
	if _, err := Find(fs, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Find decodes every input record against the CpG-island model and
// writes the islands in the requested format. Only FindCmd exits on
// failure; Find reports it.
func Find(fs *Flags, conf *config.Config) ([]Result, error) {
	start := time.Now()

	records, err := inputParser{}.records(fs)
	if err != nil {
		return nil, err
	}

	model := DefaultModel()
	results := make([]Result, 0, len(records))
	total := 0
	for _, rec := range records {
		if conf.Verbose {
			fmt.Printf("Decoding %s (%d bp)\n", rec.ID, len(rec.Seq))
		}

		result, err := findIslands(model, rec, conf.MinLength)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
		total += len(result.Islands)
	}

	elapsed := time.Since(start)
	if err := write(fs.out, conf.Format, results, elapsed.Seconds()); err != nil {
		return nil, err
	}

	if total == 0 {
		stderr.Println("no CGIs detected")
	}
	if conf.Verbose {
		fmt.Printf("%s\n\n", elapsed)
	}

	return results, nil
}

// findIslands is the core pipeline for one record: Viterbi decode, merge
// island-state runs into intervals, then annotate each kept interval
// with its statistics.
func findIslands(m *Model, rec Record, minLength int) (Result, error) {
	path, logProb, err := decode(m, rec.Seq)
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode %s: %w", rec.ID, err)
	}

	islands := []Island{}
	for _, iv := range extract(path) {
		length := iv.End - iv.Start + 1
		if length < minLength {
			continue
		}

		sub := rec.Seq[iv.Start : iv.End+1]
		islands = append(islands, Island{
			Start:     iv.Start + 1,
			End:       iv.End + 1,
			Length:    length,
			GC:        gcFraction(sub),
			ObsExpCpG: obsExpCpG(sub),
		})
	}

	return Result{
		Target:      rec.ID,
		Length:      len(rec.Seq),
		PathLogProb: logProb,
		Islands:     islands,
	}, nil
}
