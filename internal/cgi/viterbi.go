package cgi

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a sequence is empty or holds a byte
// outside the A/C/G/T alphabet.
var ErrInvalidInput = errors.New("invalid input sequence")

// decode runs the Viterbi algorithm over seq and returns the single most
// probable hidden-state path along with its log probability.
//
// The recurrence is kept entirely in log space so that chromosome-length
// inputs cannot underflow. Because emission is deterministic, any state
// whose nucleotide differs from the observed byte scores -Inf and drops
// out of the maximization at that position. Ties between predecessor
// states break toward the lowest state index, so decoding the same
// sequence always yields the same path.
func decode(m *Model, seq []byte) ([]state, float64, error) {
	n := len(seq)
	if n == 0 {
		return nil, 0, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}

	negInf := math.Inf(-1)

	// back[i][t] is the predecessor of state t on the best path to
	// position i. Scores only ever need the previous column.
	back := make([][numStates]state, n)
	var prev, curr [numStates]float64

	for s := state(0); s < numStates; s++ {
		if m.emits(s, seq[0]) {
			prev[s] = m.logInitial(s)
		} else {
			prev[s] = negInf
		}
	}
	if allNegInf(prev) {
		return nil, 0, fmt.Errorf("%w: unexpected base %q at position 0", ErrInvalidInput, seq[0])
	}

	for i := 1; i < n; i++ {
		for t := state(0); t < numStates; t++ {
			if !m.emits(t, seq[i]) {
				curr[t] = negInf
				continue
			}

			best := negInf
			bestFrom := state(0)
			for f := state(0); f < numStates; f++ {
				score := prev[f] + m.logTransition(f, t)
				if score > best {
					best = score
					bestFrom = f
				}
			}
			curr[t] = best
			back[i][t] = bestFrom
		}

		if allNegInf(curr) {
			return nil, 0, fmt.Errorf("%w: unexpected base %q at position %d", ErrInvalidInput, seq[i], i)
		}
		prev = curr
	}

	last := state(0)
	for s := state(1); s < numStates; s++ {
		if prev[s] > prev[last] {
			last = s
		}
	}

	path := make([]state, n)
	path[n-1] = last
	for i := n - 1; i > 0; i-- {
		path[i-1] = back[i][path[i]]
	}
	return path, prev[last], nil
}

func allNegInf(scores [numStates]float64) bool {
	for _, s := range scores {
		if !math.IsInf(s, -1) {
			return false
		}
	}
	return true
}
