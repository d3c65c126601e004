// README: Pure raw-payload to UnifiedBooking conversion with safe defaults.
package booking

import (
	"strings"
	"time"

	"rovia/internal/types"
)

// Placeholder labels and images used when the upstream omits
// make/model data for a booking's vehicle.
const (
	placeholderRentalLabel  = "Vehicle"
	placeholderRentalImage  = "/assets/placeholders/vehicle.png"
	placeholderServiceLabel = "Service Vehicle"
	placeholderServiceImage = "/assets/placeholders/service.png"
)

// NormalizeRental converts one raw rental record. Rentals without an
// explicit status are assumed pre-confirmed. The relevant date prefers
// the self-drive end over the intercity drop; both absent leaves it
// zero and classification falls back to status-only rules.
func NormalizeRental(raw RawRental) UnifiedBooking {
	return UnifiedBooking{
		ID:           types.ID(raw.ID),
		Category:     CategoryRental,
		Status:       normalizeStatus(raw.Status, StatusConfirmed),
		CreatedAt:    raw.CreatedAt.Time,
		RelevantDate: firstNonZero(raw.SelfDriveEndAt, raw.IntercityDropAt),
		Amount:       int64(raw.TotalAmount),
		Vehicle:      describeVehicle(raw.Vehicle, placeholderRentalLabel, placeholderRentalImage),
		Counterparty: raw.Host,
	}
}

// NormalizeService converts one raw service record. Service jobs
// default to pending until a provider accepts them; the price falls
// back to the embedded plan's price when the job total is absent.
func NormalizeService(raw RawService) UnifiedBooking {
	amount := int64(raw.TotalPrice)
	if amount == 0 && raw.Plan != nil {
		amount = int64(raw.Plan.Price)
	}
	return UnifiedBooking{
		ID:           types.ID(raw.ID),
		Category:     CategoryService,
		Status:       normalizeStatus(raw.Status, StatusPending),
		CreatedAt:    raw.CreatedAt.Time,
		RelevantDate: raw.ScheduledAt.Time,
		Amount:       amount,
		Vehicle:      describeVehicle(raw.Vehicle, placeholderServiceLabel, placeholderServiceImage),
		Counterparty: raw.Provider,
	}
}

func normalizeStatus(s, def string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return def
	}
	return s
}

// describeVehicle builds the display descriptor, substituting the
// category placeholder when make/model data is missing.
func describeVehicle(raw *RawVehicle, label, image string) VehicleDescriptor {
	if raw == nil {
		return VehicleDescriptor{Label: label, ImageURL: image}
	}
	name := strings.TrimSpace(strings.TrimSpace(raw.Make) + " " + strings.TrimSpace(raw.Model))
	if name == "" {
		name = label
	}
	img := raw.ImageURL
	if img == "" {
		img = image
	}
	return VehicleDescriptor{Label: name, ImageURL: img}
}

func firstNonZero(ts ...FlexTime) time.Time {
	for _, t := range ts {
		if !t.IsZero() {
			return t.Time
		}
	}
	return time.Time{}
}
