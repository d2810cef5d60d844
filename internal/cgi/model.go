// Package cgi locates CpG islands in nucleotide sequences by decoding
// them against a fixed 8-state hidden Markov model.
package cgi

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidModel is returned by NewModel when a probability row is
// malformed.
var ErrInvalidModel = errors.New("invalid model")

// state is one hidden state of the CpG-island HMM: a nucleotide paired
// with whether the position lies inside an island.
type state int

const (
	aIsland state = iota
	cIsland
	gIsland
	tIsland
	aOutside
	cOutside
	gOutside
	tOutside

	numStates = 8
)

// base is the nucleotide this state emits.
func (s state) base() byte {
	return "ACGTACGT"[s]
}

// island is whether this state lies inside a CpG island.
func (s state) island() bool {
	return s < aOutside
}

func (s state) String() string {
	if s.island() {
		return string(s.base()) + "+"
	}
	return string(s.base()) + "-"
}

// rowSumTolerance is how far a transition row or the initial distribution
// may stray from summing to 1. The published transition frequencies are
// rounded to two or three significant digits, so rows can be off by up
// to ~1.2%; the check catches gross typos, not rounding noise.
const rowSumTolerance = 0.02

// Model is the fixed CpG-island HMM: an initial distribution over the
// eight states and a transition matrix between them, both held as log
// probabilities. Emission is deterministic: a state emits its own
// nucleotide with probability 1. A Model is read-only after
// construction, so one Model is safe to share across goroutines.
type Model struct {
	initial    [numStates]float64
	transition [numStates][numStates]float64
}

// NewModel builds a Model from linear-space probabilities, converting
// them to log space. Errors with ErrInvalidModel if any probability is
// outside [0,1] or any row fails to sum to 1 within tolerance.
func NewModel(initial [numStates]float64, transition [numStates][numStates]float64) (*Model, error) {
	if err := checkRow("initial distribution", initial[:]); err != nil {
		return nil, err
	}

	m := &Model{}
	for s, p := range initial {
		m.initial[s] = math.Log(p)
	}
	for f, row := range transition {
		if err := checkRow(fmt.Sprintf("transition row %s", state(f)), row[:]); err != nil {
			return nil, err
		}
		for t, p := range row {
			m.transition[f][t] = math.Log(p)
		}
	}
	return m, nil
}

// checkRow validates one probability row of the model.
func checkRow(name string, row []float64) error {
	sum := 0.0
	for _, p := range row {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%w: %s has probability %f outside [0,1]", ErrInvalidModel, name, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > rowSumTolerance {
		return fmt.Errorf("%w: %s sums to %f, not 1", ErrInvalidModel, name, sum)
	}
	return nil
}

// logInitial is the log probability of the sequence beginning in s.
func (m *Model) logInitial(s state) float64 {
	return m.initial[s]
}

// logTransition is the log probability of moving from one state to another.
func (m *Model) logTransition(from, to state) float64 {
	return m.transition[from][to]
}

// emits is whether s can produce the observed nucleotide. Emission is
// deterministic on the state's nucleotide, so this is a membership test
// rather than a distribution lookup.
func (m *Model) emits(s state, b byte) bool {
	return s.base() == b
}

// Empirical CpG-island transition frequencies from human genomic data
// (Han et al. 2008). Row and column order matches the state constants:
// A+ C+ G+ T+ A- C- G- T-.
var hanTransitions = [numStates][numStates]float64{
	{0.176, 0.268, 0.417, 0.117, 0.0037, 0.0056, 0.0086, 0.0025},
	{0.167, 0.36, 0.268, 0.184, 0.00354, 0.00747, 0.00559, 0.00387},
	{0.157, 0.332, 0.367, 0.112, 0.0034, 0.0069, 0.0076, 0.0026},
	{0.077, 0.348, 0.376, 0.178, 0.0017, 0.0072, 0.0078, 0.00376},
	{0.00042, 0.00033, 0.000408, 0.00033, 0.299, 0.2047, 0.285, 0.2097},
	{0.000447, 0.00042, 0.0002, 0.000427, 0.321, 0.2975, 0.078, 0.301},
	{0.0003, 0.00036, 0.000417, 0.000417, 0.177, 0.239, 0.2915, 0.2915},
	{0.000372, 0.00037, 0.000423, 0.00033, 0.2476, 0.2456, 0.2975, 0.2077},
}

// Starting probabilities: the genome-wide fraction of positions inside
// vs outside islands, split evenly across the four nucleotides.
var hanInitial = [numStates]float64{
	0.0035, 0.0035, 0.0035, 0.0035,
	0.2465, 0.2465, 0.2465, 0.2465,
}

var defaultModel = func() *Model {
	m, err := NewModel(hanInitial, hanTransitions)
	if err != nil {
		panic(err)
	}
	return m
}()

// DefaultModel returns the process-wide CpG-island model built from the
// Han et al. 2008 frequencies. It is constructed once and never mutated.
func DefaultModel() *Model {
	return defaultModel
}
