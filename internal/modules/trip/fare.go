// README: Pure fare math; distance times rate plus GST.
package trip

import "math"

// gstRate is the tax applied on top of the base fare.
const gstRate = 0.18

// EstimateFare derives the all-inclusive fare for a trip. It returns
// nil when either input is non-positive; callers show a
// quote-on-request fallback instead of a numeric total in that case.
func EstimateFare(distanceKm, ratePerKm float64) *FareEstimate {
	if distanceKm <= 0 || ratePerKm <= 0 {
		return nil
	}
	base := int64(math.Round(distanceKm * ratePerKm))
	tax := int64(math.Round(float64(base) * gstRate))
	return &FareEstimate{
		DistanceKm:  distanceKm,
		RatePerKm:   ratePerKm,
		BaseAmount:  base,
		TaxAmount:   tax,
		TotalAmount: base + tax,
	}
}
