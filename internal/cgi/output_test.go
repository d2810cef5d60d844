package cgi

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

var outputResults = []Result{
	{
		Target: "chr_test",
		Length: 100,
		Islands: []Island{
			{Start: 21, End: 50, Length: 30, GC: 1.0, ObsExpCpG: 2.0},
			{Start: 61, End: 70, Length: 10, GC: 0.8, ObsExpCpG: 1.5},
		},
	},
}

func Test_writeBED(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBED(&buf, outputResults); err != nil {
		t.Fatalf("writeBED() error = %v", err)
	}

	// 1-based inclusive becomes 0-based half-open
	want := "chr_test\t20\t50\tCpG_island_1\n" +
		"chr_test\t60\t70\tCpG_island_2\n"
	if buf.String() != want {
		t.Errorf("writeBED() = %q, want %q", buf.String(), want)
	}
}

func Test_writeCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCSV(&buf, outputResults); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("writeCSV() wrote %d lines, want 3", len(lines))
	}
	if lines[0] != "target,start,end,length,gc,obs_exp_cpg" {
		t.Errorf("writeCSV() header = %q", lines[0])
	}
	if lines[1] != "chr_test,21,50,30,1.000,2.000" {
		t.Errorf("writeCSV() row = %q", lines[1])
	}
}

func Test_writeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, outputResults); err != nil {
		t.Fatalf("writeTable() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"target", "chr_test", "21", "50", "obs/exp CpG"} {
		if !strings.Contains(out, want) {
			t.Errorf("writeTable() output missing %q:\n%s", want, out)
		}
	}
}

func Test_writeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, outputResults, 0.25); err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}

	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("writeJSON() produced invalid JSON: %v", err)
	}
	if out.Execution != 0.25 {
		t.Errorf("Output.Execution = %f, want 0.25", out.Execution)
	}
	if len(out.Results) != 1 || len(out.Results[0].Islands) != 2 {
		t.Errorf("Output.Results = %+v", out.Results)
	}
	if out.Results[0].Islands[0].Start != 21 {
		t.Errorf("island start = %d, want 21", out.Results[0].Islands[0].Start)
	}
}
