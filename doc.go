// Package probemap provides an open-addressing string hash table for Go.
//
// Probemap maps string keys to string values using double hashing for
// collision resolution, tombstones for deletion, and load-factor-driven
// resizing over prime bucket counts.
//
// # Quick Start
//
//	t, _ := probemap.New()
//	t.Insert("alpha", "1")
//
//	v, ok := t.Search("alpha")
//	fmt.Println(v, ok) // "1" true
//
//	t.Delete("alpha")
//
// # Sizing Policy
//
// The table starts at a prime minimum size (53 buckets) and rebuilds itself
// as the load factor moves: above 70% it doubles, below 10% it halves, never
// dropping under the minimum. Every rebuild reinserts the live entries and
// purges accumulated tombstones. The thresholds and the minimum are tunable:
//
//	t, err := probemap.New(
//	    probemap.WithMinSize(101),
//	    probemap.WithGrowAt(80),
//	    probemap.WithShrinkAt(20),
//	)
//
// # Key Features
//
//   - Double hashing with a full-cycle probe stride over prime table sizes
//   - Tombstone deletion that keeps probe chains intact
//   - Automatic grow and shrink with tunable hysteresis
//   - Optional structured logging (log/slog) and metrics collection
//
// A Table is not safe for concurrent use without external synchronization.
package probemap
