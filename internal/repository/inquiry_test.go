package repository

import (
	"testing"
	"time"

	"github.com/example/brandsbridge/internal/models"
)

func TestStatusUpdates(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		status        models.InquiryStatus
		wantResponded bool
	}{
		{"new", models.InquiryStatusNew, false},
		{"in progress", models.InquiryStatusInProgress, false},
		{"responded stamps time", models.InquiryStatusResponded, true},
		{"closed leaves stamp alone", models.InquiryStatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := statusUpdates(tt.status, now)

			if updates["status"] != tt.status {
				t.Errorf("status = %v, want %v", updates["status"], tt.status)
			}

			stamped, ok := updates["responded_at"]
			if ok != tt.wantResponded {
				t.Fatalf("responded_at present = %v, want %v", ok, tt.wantResponded)
			}
			if tt.wantResponded && stamped != now {
				t.Errorf("responded_at = %v, want %v", stamped, now)
			}
			if !tt.wantResponded && len(updates) != 1 {
				t.Errorf("extra columns in %v", updates)
			}
		})
	}
}

func TestGroupCountsToMap(t *testing.T) {
	rows := []groupCount{
		{Label: "NEW", Count: 12},
		{Label: "RESPONDED", Count: 4},
		{Label: "CLOSED", Count: 0},
	}

	counts := groupCountsToMap(rows)

	if len(counts) != 3 {
		t.Fatalf("len = %d, want 3", len(counts))
	}
	if counts["NEW"] != 12 || counts["RESPONDED"] != 4 || counts["CLOSED"] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestGroupCountsToMapEmpty(t *testing.T) {
	counts := groupCountsToMap(nil)
	if counts == nil {
		t.Fatal("want empty map, got nil")
	}
	if len(counts) != 0 {
		t.Errorf("len = %d, want 0", len(counts))
	}
}
