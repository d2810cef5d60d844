package cgi

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"
)

// Output is a struct containing the full run results for JSON rendering.
type Output struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Results, one per input record
	Results []Result `json:"results"`
}

// write renders results in the requested format to the out path, or to
// stdout when out is "" or "-".
func write(out, format string, results []Result, seconds float64) error {
	w := os.Stdout
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %s", out, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "bed":
		return writeBED(w, results)
	case "csv":
		return writeCSV(w, results)
	case "json":
		return writeJSON(w, results, seconds)
	default:
		return writeTable(w, results)
	}
}

// writeTable logs islands in an aligned human-readable table, 1-based
// inclusive coordinates.
func writeTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "target\tstart\tend\tlength\tGC\tobs/exp CpG\t\n")
	for _, r := range results {
		for _, isl := range r.Islands {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.3f\t%.3f\n",
				r.Target, isl.Start, isl.End, isl.Length, isl.GC, isl.ObsExpCpG)
		}
	}
	return tw.Flush()
}

// writeBED renders islands as BED4 lines: 0-based half-open coordinates,
// as genome browsers expect.
func writeBED(w io.Writer, results []Result) error {
	n := 0
	for _, r := range results {
		for _, isl := range r.Islands {
			n++
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\tCpG_island_%d\n",
				r.Target, isl.Start-1, isl.End, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCSV renders islands as CSV rows, 1-based inclusive coordinates.
func writeCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"target", "start", "end", "length", "gc", "obs_exp_cpg"}); err != nil {
		return err
	}
	for _, r := range results {
		for _, isl := range r.Islands {
			row := []string{
				r.Target,
				strconv.Itoa(isl.Start),
				strconv.Itoa(isl.End),
				strconv.Itoa(isl.Length),
				strconv.FormatFloat(isl.GC, 'f', 3, 64),
				strconv.FormatFloat(isl.ObsExpCpG, 'f', 3, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeJSON turns the results into an Output document and writes it.
func writeJSON(w io.Writer, results []Result, seconds float64) error {
	// store save time, using same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Time:      stamp,
		Execution: seconds,
		Results:   results,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
