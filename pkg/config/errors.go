package config

import (
	"errors"
	"fmt"
)

// ErrNoValidConfig is returned by Parse when boundary trimming is enabled
// and either the start or the end marker is absent from the input.
var ErrNoValidConfig = errors.New("no valid config found")

// AmbiguousMatchError records a parent-chain step that did not narrow to
// exactly one line. Zero and multiple matches are both ambiguity: the
// section walk never silently picks a first match.
type AmbiguousMatchError struct {
	Pattern string
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no lines matched parent statement %q", e.Pattern)
	}
	return fmt.Sprintf("%d lines matched parent statement %q", e.Matches, e.Pattern)
}

// AmbiguousChildMatchError records a section auto-parse pattern that
// matched more than one direct child of a parent candidate. The pattern's
// contribution is dropped for that parent.
type AmbiguousChildMatchError struct {
	Pattern string
	Parent  string
	Matches int
}

func (e *AmbiguousChildMatchError) Error() string {
	return fmt.Sprintf("%d children of %q matched pattern %q", e.Matches, e.Parent, e.Pattern)
}
