package cadence

import (
	"sort"
	"time"
)

// Result holds the interval statistics for one run. Count is the number of
// intervals between consecutive timestamps, one less than the number of
// objects that contributed.
type Result struct {
	Average time.Duration
	Total   time.Duration
	Count   int
}

// Breakdown is Total split into display units. Each field consumes the
// remainder of the previous one.
type Breakdown struct {
	Hours   int64
	Minutes int64
	Seconds int64
	Millis  int64
}

// Aggregate sorts the timestamps and reduces the consecutive gaps into a
// total and an average. ok is false when fewer than two timestamps were
// collected; that is a normal outcome, not an error.
//
// Equal timestamps are kept as zero-length intervals and count toward the
// average. The average uses integer duration division, truncating any
// fractional nanosecond remainder toward zero.
func Aggregate(timestamps []time.Time) (Result, bool) {
	if len(timestamps) < 2 {
		return Result{}, false
	}

	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	var total time.Duration
	for i := 1; i < len(sorted); i++ {
		total += sorted[i].Sub(sorted[i-1])
	}

	count := len(sorted) - 1
	return Result{
		Average: total / time.Duration(count),
		Total:   total,
		Count:   count,
	}, true
}

// Breakdown decomposes Total into whole hours, minutes, seconds and
// milliseconds. Display-only; sub-millisecond precision is dropped here
// but never in Average or Total.
func (r Result) Breakdown() Breakdown {
	ms := r.Total.Milliseconds()

	hours := ms / 3_600_000
	ms %= 3_600_000

	minutes := ms / 60_000
	ms %= 60_000

	seconds := ms / 1_000
	millis := ms % 1_000

	return Breakdown{
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Millis:  millis,
	}
}
