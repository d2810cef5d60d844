package cgi

// Interval is one CpG island: inclusive 0-based start and end positions
// in the cleaned sequence.
type Interval struct {
	Start int
	End   int
}

// extract merges each maximal run of island states in the path into one
// Interval. Intervals come back in ascending order and never overlap; a
// path with no island states yields none.
func extract(path []state) []Interval {
	var islands []Interval
	open := false

	for i, s := range path {
		switch {
		case s.island() && !open:
			islands = append(islands, Interval{Start: i})
			open = true
		case !s.island() && open:
			islands[len(islands)-1].End = i - 1
			open = false
		}
	}
	if open {
		islands[len(islands)-1].End = len(path) - 1
	}
	return islands
}

// gcFraction is the fraction of bases in seq that are G or C.
func gcFraction(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for _, b := range seq {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// obsExpCpG is the observed/expected CpG ratio of seq:
// count(CG) * len / (count(C) * count(G)), after Gardiner-Garden and
// Frommer (1987). Zero when seq holds no CG dinucleotide.
func obsExpCpG(seq []byte) float64 {
	nc, ng, ncg := 0, 0, 0
	for _, b := range seq {
		if b == 'C' {
			nc++
		} else if b == 'G' {
			ng++
		}
	}
	for i := 0; i < len(seq)-1; i++ {
		if seq[i] == 'C' && seq[i+1] == 'G' {
			ncg++
		}
	}
	if ncg == 0 {
		return 0
	}
	return float64(ncg*len(seq)) / float64(nc*ng)
}
