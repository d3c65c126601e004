// README: Merge, dedup, and ordering of the unified booking feed.
package booking

import "sort"

// Unify merges one or two role-scoped bundles into a single normalized
// feed, newest first.
//
// Rentals from the two bundles are disjoint real-world records (my own
// trips vs. trips booked against my listed vehicles) and are never
// deduplicated. Services can surface in both views as the same
// underlying record; those merge by id with the counterparty copy
// winning, since it carries the authoritative host-context fields.
//
// counterparty may be nil when the caller holds no host role.
func Unify(self Bundle, counterparty *Bundle) []UnifiedBooking {
	var host Bundle
	if counterparty != nil {
		host = *counterparty
	}

	out := make([]UnifiedBooking, 0, len(host.Rentals)+len(self.Rentals)+len(self.Services)+len(host.Services))
	for _, r := range host.Rentals {
		out = append(out, NormalizeRental(r))
	}
	for _, r := range self.Rentals {
		out = append(out, NormalizeRental(r))
	}
	out = append(out, dedupServices(self.Services, host.Services)...)

	// Stable keeps input order on createdAt ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func dedupServices(self, host []RawService) []UnifiedBooking {
	fromHost := make(map[string]bool, len(host))
	for _, s := range host {
		fromHost[s.ID] = true
	}

	out := make([]UnifiedBooking, 0, len(self)+len(host))
	for _, s := range self {
		if fromHost[s.ID] {
			continue
		}
		out = append(out, NormalizeService(s))
	}
	for _, s := range host {
		out = append(out, NormalizeService(s))
	}
	return out
}
