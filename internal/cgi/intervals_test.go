package cgi

import (
	"math"
	"reflect"
	"testing"
)

func Test_extract(t *testing.T) {
	tests := []struct {
		name string
		path []state
		want []Interval
	}{
		{
			"all outside",
			[]state{aOutside, cOutside, gOutside, tOutside},
			nil,
		},
		{
			"all island",
			[]state{cIsland, gIsland, cIsland, gIsland},
			[]Interval{{Start: 0, End: 3}},
		},
		{
			"island at start",
			[]state{cIsland, gIsland, aOutside, tOutside},
			[]Interval{{Start: 0, End: 1}},
		},
		{
			"island at end",
			[]state{aOutside, tOutside, cIsland, gIsland},
			[]Interval{{Start: 2, End: 3}},
		},
		{
			"two islands",
			[]state{cIsland, aOutside, aOutside, gIsland, cIsland, tOutside, gIsland},
			[]Interval{{Start: 0, End: 0}, {Start: 3, End: 4}, {Start: 6, End: 6}},
		},
		{
			"single island position",
			[]state{gIsland},
			[]Interval{{Start: 0, End: 0}},
		},
		{
			"single outside position",
			[]state{gOutside},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract(tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extract() = %v, want %v", got, tt.want)
			}

			// the union of intervals must be exactly the island positions
			covered := make(map[int]bool)
			last := -1
			for _, iv := range got {
				if iv.Start <= last {
					t.Errorf("extract() intervals out of order or overlapping: %v", got)
				}
				for i := iv.Start; i <= iv.End; i++ {
					covered[i] = true
				}
				last = iv.End
			}
			for i, s := range tt.path {
				if covered[i] != s.island() {
					t.Errorf("position %d: covered = %v, island = %v", i, covered[i], s.island())
				}
			}
		})
	}
}

func Test_gcFraction(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"all GC", "CGCG", 1.0},
		{"no GC", "ATAT", 0.0},
		{"half GC", "ATCG", 0.5},
		{"empty", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gcFraction([]byte(tt.seq)); got != tt.want {
				t.Errorf("gcFraction(%q) = %f, want %f", tt.seq, got, tt.want)
			}
		})
	}
}

func Test_obsExpCpG(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		// 2 CGs, length 4, 2 Cs, 2 Gs: 2*4/(2*2)
		{"alternating CG", "CGCG", 2.0},
		{"no CG dinucleotide", "GCAT", 0.0},
		// 1 CG, length 4, 1 C, 1 G: 1*4/(1*1)
		{"single CG", "ACGT", 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := obsExpCpG([]byte(tt.seq)); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("obsExpCpG(%q) = %f, want %f", tt.seq, got, tt.want)
			}
		})
	}
}
