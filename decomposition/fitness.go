package decomposition

import (
	"strconv"
	"strings"
)

// Fitness ranks candidate decompositions. Levels are compared
// lexicographically and a greater Fitness is better. The search uses a
// single level holding the negated width.
type Fitness []float64

// NewFitness returns a Fitness with the given levels.
func NewFitness(levels ...float64) Fitness {
	return append(Fitness(nil), levels...)
}

// WidthFitness returns the single-level fitness of a decomposition of the given width.
func WidthFitness(width int) Fitness {
	return Fitness{-float64(width)}
}

// Levels returns the number of levels.
func (f Fitness) Levels() int {
	return len(f)
}

// At returns level i.
func (f Fitness) At(i int) float64 {
	return f[i]
}

// Compare returns -1, 0 or +1 as f is worse than, equal to or better than o.
// A shorter vector that is a prefix of the longer one is the worse.
func (f Fitness) Compare(o Fitness) int {
	for i := 0; i < len(f) && i < len(o); i++ {
		switch {
		case f[i] < o[i]:
			return -1
		case f[i] > o[i]:
			return 1
		}
	}
	switch {
	case len(f) < len(o):
		return -1
	case len(f) > len(o):
		return 1
	}
	return 0
}

// Less reports whether f is strictly worse than o.
func (f Fitness) Less(o Fitness) bool {
	return f.Compare(o) < 0
}

// String renders "value @ level" pairs, e.g. "-3 @ 0".
func (f Fitness) String() string {
	parts := make([]string, len(f))
	for i, v := range f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64) + " @ " + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}
