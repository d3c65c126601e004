// README: Normalizer tests covering defaults, coercion, and fallbacks.
package booking

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNormalizeRental_StatusDefaultsAndCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"missing defaults to confirmed", "", StatusConfirmed},
		{"lower-cased", "COMPLETED", StatusCompleted},
		{"whitespace trimmed", "  In_Progress ", StatusInProgress},
		{"unknown passes through", "rescheduled", "rescheduled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRental(RawRental{ID: "r1", Status: tt.in})
			if got.Status != tt.want {
				t.Errorf("status = %q, want %q", got.Status, tt.want)
			}
		})
	}
}

func TestNormalizeService_StatusDefaultsToPending(t *testing.T) {
	got := NormalizeService(RawService{ID: "s1"})
	if got.Status != StatusPending {
		t.Errorf("status = %q, want %q", got.Status, StatusPending)
	}
	if got.Category != CategoryService {
		t.Errorf("category = %q, want %q", got.Category, CategoryService)
	}
}

func TestNormalizeRental_RelevantDateFallback(t *testing.T) {
	end := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	drop := time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  RawRental
		want time.Time
	}{
		{"self-drive end preferred", RawRental{SelfDriveEndAt: FlexTime{end}, IntercityDropAt: FlexTime{drop}}, end},
		{"intercity drop fallback", RawRental{IntercityDropAt: FlexTime{drop}}, drop},
		{"both absent leaves zero", RawRental{}, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRental(tt.raw)
			if !got.RelevantDate.Equal(tt.want) {
				t.Errorf("relevantDate = %v, want %v", got.RelevantDate, tt.want)
			}
		})
	}
}

func TestNormalizeService_AmountPlanFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  RawService
		want int64
	}{
		{"total price wins", RawService{TotalPrice: 2500, Plan: &RawServicePlan{Price: 1800}}, 2500},
		{"plan price fallback", RawService{Plan: &RawServicePlan{Price: 1800}}, 1800},
		{"no price at all", RawService{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeService(tt.raw).Amount; got != tt.want {
				t.Errorf("amount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFlexAmount_Coercion(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int64
	}{
		{"number", `{"total_amount": 1200}`, 1200},
		{"decimal rounds", `{"total_amount": 1200.6}`, 1201},
		{"numeric string", `{"total_amount": "950"}`, 950},
		{"null", `{"total_amount": null}`, 0},
		{"absent", `{}`, 0},
		{"garbage string", `{"total_amount": "n/a"}`, 0},
		{"empty string", `{"total_amount": ""}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawRental
			if err := json.Unmarshal([]byte(tt.json), &raw); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if int64(raw.TotalAmount) != tt.want {
				t.Errorf("amount = %d, want %d", int64(raw.TotalAmount), tt.want)
			}
		})
	}
}

func TestFlexTime_Layouts(t *testing.T) {
	tests := []struct {
		name string
		json string
		zero bool
	}{
		{"rfc3339", `{"created_at": "2026-08-20T10:30:00Z"}`, false},
		{"datetime", `{"created_at": "2026-08-20 10:30:00"}`, false},
		{"date only", `{"created_at": "2026-08-20"}`, false},
		{"null", `{"created_at": null}`, true},
		{"garbage", `{"created_at": "soon"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawRental
			if err := json.Unmarshal([]byte(tt.json), &raw); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if raw.CreatedAt.IsZero() != tt.zero {
				t.Errorf("IsZero = %v, want %v", raw.CreatedAt.IsZero(), tt.zero)
			}
		})
	}
}

func TestDescribeVehicle_Placeholders(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawRental
		wantLabel string
		wantImage string
	}{
		{
			name:      "full descriptor",
			raw:       RawRental{Vehicle: &RawVehicle{Make: "Maruti", Model: "Swift", ImageURL: "https://cdn/x.jpg"}},
			wantLabel: "Maruti Swift",
			wantImage: "https://cdn/x.jpg",
		},
		{
			name:      "missing vehicle",
			raw:       RawRental{},
			wantLabel: placeholderRentalLabel,
			wantImage: placeholderRentalImage,
		},
		{
			name:      "empty make and model",
			raw:       RawRental{Vehicle: &RawVehicle{}},
			wantLabel: placeholderRentalLabel,
			wantImage: placeholderRentalImage,
		},
		{
			name:      "model only",
			raw:       RawRental{Vehicle: &RawVehicle{Model: "Swift"}},
			wantLabel: "Swift",
			wantImage: placeholderRentalImage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRental(tt.raw).Vehicle
			if got.Label != tt.wantLabel || got.ImageURL != tt.wantImage {
				t.Errorf("vehicle = %+v, want label %q image %q", got, tt.wantLabel, tt.wantImage)
			}
		})
	}
}

func TestNormalizeService_UsesServicePlaceholder(t *testing.T) {
	got := NormalizeService(RawService{ID: "s1"}).Vehicle
	if got.Label != placeholderServiceLabel || got.ImageURL != placeholderServiceImage {
		t.Errorf("vehicle = %+v, want service placeholder", got)
	}
}
