package probemap

import "errors"

var (
	// ErrInvalidMinSize is returned by New when the configured minimum
	// size is below 2. From 2 upward, doubling the base size always lands
	// on a strictly larger prime, so a grow can never be a no-op.
	ErrInvalidMinSize = errors.New("minimum size must be at least 2")

	// ErrInvalidThresholds is returned by New when the load thresholds do
	// not satisfy 0 <= shrink < grow < 100. Keeping the shrink threshold
	// strictly below the grow threshold leaves a dead zone between them,
	// which is what prevents resize thrashing near the minimum size.
	ErrInvalidThresholds = errors.New("load thresholds must satisfy 0 <= shrink < grow < 100")
)
