package center

import "errors"

// Input validation failures. Every error returned by Prepare and Scale wraps
// exactly one of these, and no axis is modified when one is returned.
var (
	ErrInvalidColormap     = errors.New("invalid colormap")
	ErrInvalidCenter       = errors.New("invalid center value")
	ErrInvalidAxes         = errors.New("invalid axes")
	ErrInvalidLimits       = errors.New("invalid color limits")
	ErrNonFiniteAxisLimits = errors.New("axis has non-finite color limits")
	ErrInvalidFlag         = errors.New("invalid apply flag")
	ErrInvalidUsage        = errors.New("invalid usage")
)

// CheckOutputs validates the number of results a caller asks for. A call
// produces at most one result, the centered colormap.
func CheckOutputs(n int) error {
	if n < 0 || n > 1 {
		return errorf(ErrInvalidUsage, "at most one output is produced, %d requested", n)
	}
	return nil
}
