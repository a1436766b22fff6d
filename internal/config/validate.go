package config

import (
	"strconv"

	"github.com/NielsdaWheelz/maketree/internal/errors"
)

// Validate checks that o describes a tree the builder can produce.
// Returns E_INVALID_OPTIONS naming the first offending field.
func Validate(o Options) error {
	if o.Levels < 0 {
		return invalid("levels", "levels must be >= 0, got "+strconv.Itoa(o.Levels))
	}
	if o.BranchDrawMax < 0 {
		return invalid("branch_draw_max", "branch_draw_max must be >= 0, got "+strconv.Itoa(o.BranchDrawMax))
	}
	if o.MaxChildren < 0 {
		return invalid("max_children", "max_children must be >= 0, got "+strconv.Itoa(o.MaxChildren))
	}
	if o.NameMinLen < 1 {
		return invalid("name_min_len", "name_min_len must be >= 1, got "+strconv.Itoa(o.NameMinLen))
	}
	if o.NameMaxLen < o.NameMinLen {
		return invalid("name_max_len", "name_max_len must be >= name_min_len ("+
			strconv.Itoa(o.NameMaxLen)+" < "+strconv.Itoa(o.NameMinLen)+")")
	}
	return nil
}

func invalid(field, msg string) error {
	return errors.NewWithDetails(errors.EInvalidOptions, msg, map[string]string{"field": field})
}
