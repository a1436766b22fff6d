// Package config holds the generator options and their hard-coded defaults.
package config

// Reference constants for the generated tree.
const (
	DefaultLevels        = 16
	DefaultBranchDrawMax = 100
	DefaultBranchCutoff  = 40
	DefaultMaxChildren   = 5
	DefaultNameMinLen    = 5
	DefaultNameMaxLen    = 10
)

// Options controls the shape of a generated tree.
type Options struct {
	// Levels is the number of expansion rounds; it bounds the tree depth.
	Levels int

	// BranchDrawMax is the upper bound of the per-node branch draw in [0, BranchDrawMax].
	BranchDrawMax int

	// BranchCutoff: a node is expanded when its draw is strictly greater than this.
	BranchCutoff int

	// MaxChildren is the upper bound of the child-count draw in [0, MaxChildren].
	MaxChildren int

	// NameMinLen and NameMaxLen bound the length of names and titles.
	NameMinLen int
	NameMaxLen int
}

// Defaults returns the options every maketree run uses.
func Defaults() Options {
	return Options{
		Levels:        DefaultLevels,
		BranchDrawMax: DefaultBranchDrawMax,
		BranchCutoff:  DefaultBranchCutoff,
		MaxChildren:   DefaultMaxChildren,
		NameMinLen:    DefaultNameMinLen,
		NameMaxLen:    DefaultNameMaxLen,
	}
}

// BranchProbability is the chance that a frontier node is expanded.
// For the defaults this is 60/101.
func (o Options) BranchProbability() float64 {
	total := o.BranchDrawMax + 1
	hits := o.BranchDrawMax - o.BranchCutoff
	switch {
	case total <= 0 || hits <= 0:
		return 0
	case hits >= total:
		return 1
	}
	return float64(hits) / float64(total)
}
