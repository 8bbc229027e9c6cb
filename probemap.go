package probemap

import (
	"time"

	"github.com/hupe1980/probemap/prime"
)

// Default sizing policy. The minimum base size is prime so a fresh table
// needs no rounding; the thresholds reproduce the classic 70%/10% rule.
const (
	DefaultMinSize  = 53
	DefaultGrowAt   = 70
	DefaultShrinkAt = 10
)

type bucketState uint8

const (
	bucketEmpty bucketState = iota
	bucketDeleted
	bucketOccupied
)

// bucket is one slot of the table. The state tag distinguishes a slot that
// was never used from a tombstone left by Delete; probe walks must pass
// through tombstones but may stop at empty slots.
type bucket struct {
	state bucketState
	key   string
	value string
}

// Table is an open-addressing string hash table with double hashing.
//
// A Table is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization.
type Table struct {
	baseSize int // size last requested by policy, pre prime rounding
	size     int // bucket count, smallest prime >= baseSize
	count    int // live entries (excludes tombstones)
	buckets  []bucket

	minSize  int
	growAt   int
	shrinkAt int
	logger   *Logger
	metrics  MetricsCollector
}

// New creates an empty Table at the configured minimum size.
func New(optFns ...Option) (*Table, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	size := prime.NextPrime(o.minSize)

	return &Table{
		baseSize: o.minSize,
		size:     size,
		buckets:  make([]bucket, size),
		minSize:  o.minSize,
		growAt:   o.growAt,
		shrinkAt: o.shrinkAt,
		logger:   o.logger,
		metrics:  o.metrics,
	}, nil
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.count }

// Size returns the current bucket count. It is always prime.
func (t *Table) Size() int { return t.size }

// Load returns the current load factor as an integer percentage.
func (t *Table) Load() int { return t.count * 100 / t.size }

// Insert stores value under key, overwriting any previous value for the
// same key. The table grows first when the load factor is above the grow
// threshold.
func (t *Table) Insert(key, value string) {
	start := time.Now()

	if t.Load() > t.growAt {
		t.resize(t.baseSize * 2)
	}

	inserted := t.place(key, value)

	t.logger.LogInsert(key, !inserted)
	t.metrics.RecordInsert(time.Since(start), !inserted)
}

// place walks the probe sequence for key and stores the entry, either
// overwriting a matching occupied slot in place or claiming the first
// tombstone passed on the walk (falling back to the terminating empty
// slot). It reports whether a new entry was added. Also the reinsertion
// path for resize, which is how tombstones get purged.
func (t *Table) place(key, value string) bool {
	seq := newProbeSeq(key, t.size)
	tombstone := -1

	for i := 0; i < t.size; i++ {
		b := &t.buckets[seq.idx]
		switch b.state {
		case bucketEmpty:
			at := seq.idx
			if tombstone >= 0 {
				at = tombstone
			}
			t.buckets[at] = bucket{state: bucketOccupied, key: key, value: value}
			t.count++
			return true
		case bucketDeleted:
			if tombstone < 0 {
				tombstone = seq.idx
			}
		case bucketOccupied:
			if b.key == key {
				b.value = value
				return false
			}
		}
		seq.next()
	}

	// Every slot on the cycle is occupied or a tombstone. The load bound
	// keeps count below size, so a tombstone must have been seen.
	t.buckets[tombstone] = bucket{state: bucketOccupied, key: key, value: value}
	t.count++
	return true
}

// Search returns the value stored under key. The boolean is false when the
// key is absent. Search never mutates the table.
func (t *Table) Search(key string) (string, bool) {
	start := time.Now()

	value, found := "", false
	seq := newProbeSeq(key, t.size)
walk:
	for i := 0; i < t.size; i++ {
		b := &t.buckets[seq.idx]
		switch b.state {
		case bucketEmpty:
			break walk
		case bucketOccupied:
			if b.key == key {
				value, found = b.value, true
				break walk
			}
		}
		seq.next()
	}

	t.logger.LogSearch(key, found)
	t.metrics.RecordSearch(time.Since(start), found)
	return value, found
}

// Delete removes the entry stored under key and reports whether an entry
// was removed. The slot becomes a tombstone so probe chains running through
// it stay intact. The table shrinks first when the load factor is below the
// shrink threshold and the table is above its minimum size.
func (t *Table) Delete(key string) bool {
	start := time.Now()

	if t.Load() < t.shrinkAt {
		t.resize(t.baseSize / 2)
	}

	deleted := false
	seq := newProbeSeq(key, t.size)
walk:
	for i := 0; i < t.size; i++ {
		b := &t.buckets[seq.idx]
		switch b.state {
		case bucketEmpty:
			break walk
		case bucketOccupied:
			if b.key == key {
				*b = bucket{state: bucketDeleted}
				t.count--
				deleted = true
				break walk
			}
		}
		seq.next()
	}

	t.logger.LogDelete(key, deleted)
	t.metrics.RecordDelete(time.Since(start), deleted)
	return deleted
}

// Clear releases every entry and resets the table to its minimum geometry.
func (t *Table) Clear() {
	t.baseSize = t.minSize
	t.size = prime.NextPrime(t.minSize)
	t.count = 0
	t.buckets = make([]bucket, t.size)
}

// resize rebuilds the table over NextPrime(targetBase) buckets, reinserting
// every live entry and dropping tombstones. Requests below the configured
// minimum are ignored, which bounds shrinking. The new bucket array is fully
// built before it replaces the old one, so the table is never observable
// mid-rebuild.
func (t *Table) resize(targetBase int) {
	if targetBase < t.minSize {
		return
	}

	start := time.Now()
	oldSize := t.size

	fresh := Table{
		baseSize: targetBase,
		size:     prime.NextPrime(targetBase),
	}
	fresh.buckets = make([]bucket, fresh.size)

	for i := range t.buckets {
		if t.buckets[i].state == bucketOccupied {
			fresh.place(t.buckets[i].key, t.buckets[i].value)
		}
	}

	t.baseSize = fresh.baseSize
	t.size = fresh.size
	t.count = fresh.count
	t.buckets = fresh.buckets

	t.logger.LogResize(oldSize, t.size, t.count)
	t.metrics.RecordResize(oldSize, t.size, time.Since(start))
}
