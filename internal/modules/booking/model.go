// README: Unified booking shape plus the raw upstream payload types.
package booking

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"rovia/internal/types"
)

type Category string

const (
	CategoryRental  Category = "rental"
	CategoryService Category = "service"
)

// Lifecycle statuses seen in upstream payloads, lower-cased on
// normalization. The set is open; unknown statuses pass through.
const (
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusPending    = "pending"
	StatusScheduled  = "scheduled"
)

// Bucket is the temporal classification of a booking. It is derived on
// every call against the caller's clock and never stored.
type Bucket string

const (
	BucketOngoing  Bucket = "ongoing"
	BucketUpcoming Bucket = "upcoming"
	BucketPast     Bucket = "past"
)

// ParseBucket maps a query-string value onto a Bucket.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketOngoing:
		return BucketOngoing, true
	case BucketUpcoming:
		return BucketUpcoming, true
	case BucketPast:
		return BucketPast, true
	}
	return "", false
}

// UnifiedBooking is the single record shape the feed exposes regardless
// of which upstream view a booking came from.
type UnifiedBooking struct {
	ID       types.ID `json:"id"`
	Category Category `json:"category"`
	Status   string   `json:"status"`
	// CreatedAt orders the feed; RelevantDate drives classification
	// (rental end date, service scheduled date). Zero means absent.
	CreatedAt    time.Time         `json:"created_at"`
	RelevantDate time.Time         `json:"relevant_date,omitempty"`
	Amount       int64             `json:"amount"`
	Vehicle      VehicleDescriptor `json:"vehicle"`
	Counterparty json.RawMessage   `json:"counterparty,omitempty"`
}

// VehicleDescriptor is display-only.
type VehicleDescriptor struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}

// Bundle is one role-scoped fetch result from the upstream backend.
type Bundle struct {
	Rentals  []RawRental  `json:"rentals"`
	Services []RawService `json:"services"`
}

// RawRental is a rental booking as the upstream sends it. All fields
// except ID are optional in practice.
type RawRental struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	CreatedAt       FlexTime        `json:"created_at"`
	SelfDriveEndAt  FlexTime        `json:"self_drive_end_at"`
	IntercityDropAt FlexTime        `json:"intercity_drop_at"`
	TotalAmount     FlexAmount      `json:"total_amount"`
	Vehicle         *RawVehicle     `json:"vehicle"`
	Host            json.RawMessage `json:"host"`
}

// RawService is a maintenance/service job as the upstream sends it.
type RawService struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	CreatedAt   FlexTime        `json:"created_at"`
	ScheduledAt FlexTime        `json:"scheduled_at"`
	TotalPrice  FlexAmount      `json:"total_price"`
	Plan        *RawServicePlan `json:"plan"`
	Vehicle     *RawVehicle     `json:"vehicle"`
	Provider    json.RawMessage `json:"provider"`
}

type RawServicePlan struct {
	Name  string     `json:"name"`
	Price FlexAmount `json:"price"`
}

type RawVehicle struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	ImageURL string `json:"image_url"`
}

// FlexAmount tolerates the upstream's loose money encoding: JSON
// number, numeric string, or null all decode; anything malformed
// decodes to zero rather than failing the whole payload.
type FlexAmount int64

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*a = FlexAmount(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*a = FlexAmount(int64(f + 0.5))
		return nil
	}
	*a = 0
	return nil
}

// FlexTime tolerates the handful of timestamp layouts the upstream
// emits. Malformed or missing values decode to the zero time.
type FlexTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}
