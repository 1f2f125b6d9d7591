package splitter

import "errors"

// "No split" outcomes are expected, not faults. Callers should exclude the
// file and move on. All three sentinels match ErrNoSplit via errors.Is.
var (
	// ErrNoSplit is the umbrella error for any unsplittable file.
	ErrNoSplit = errors.New("no split found")

	// ErrUnsplittableInput means the file is too short to contain a boundary.
	ErrUnsplittableInput = wrapNoSplit("input too short to split")

	// ErrNoCandidateFound means structural and fallback extraction both
	// yielded nothing usable.
	ErrNoCandidateFound = wrapNoSplit("no split candidate found")

	// ErrNoValidSplit means candidates exist but none satisfied the size,
	// ratio and syntactic-safety constraints, even after the relaxed retry.
	ErrNoValidSplit = wrapNoSplit("no candidate passed validation")
)

type noSplitError struct {
	msg string
}

func (e *noSplitError) Error() string { return e.msg }

func (e *noSplitError) Is(target error) bool { return target == ErrNoSplit }

func wrapNoSplit(msg string) error {
	return &noSplitError{msg: msg}
}

// IsNoSplit reports whether err is one of the expected no-split outcomes.
func IsNoSplit(err error) bool {
	return errors.Is(err, ErrNoSplit)
}
