// README: Temporal bucket classification for unified bookings.
package booking

import "time"

// terminalStatuses force past classification unconditionally. A booking
// already completed or cancelled must never surface as ongoing or
// upcoming, even when its relevant date lies in the future.
var terminalStatuses = map[string]bool{
	StatusCompleted: true,
	StatusCancelled: true,
}

// Classify assigns a bucket against the caller-supplied clock. The
// precedence is fixed:
//
//  1. terminal status        -> past
//  2. relevant date elapsed  -> past
//  3. in_progress            -> ongoing
//  4. everything else        -> upcoming
//
// A booking with no relevant date falls through to upcoming unless its
// status says otherwise.
func Classify(b UnifiedBooking, now time.Time) Bucket {
	if terminalStatuses[b.Status] {
		return BucketPast
	}
	if !b.RelevantDate.IsZero() && b.RelevantDate.Before(now) {
		return BucketPast
	}
	if b.Status == StatusInProgress {
		return BucketOngoing
	}
	return BucketUpcoming
}

// FilterByBucket returns the bookings whose classification at now
// equals bucket. The input is never mutated and membership is always
// recomputed; buckets shift as time passes.
func FilterByBucket(bookings []UnifiedBooking, bucket Bucket, now time.Time) []UnifiedBooking {
	out := make([]UnifiedBooking, 0, len(bookings))
	for _, b := range bookings {
		if Classify(b, now) == bucket {
			out = append(out, b)
		}
	}
	return out
}
