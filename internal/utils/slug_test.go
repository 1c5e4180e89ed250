package utils

import "testing"

func TestEnsureSlug(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		fromName string
		want     string
	}{
		{"explicit wins", "custom-slug", "Some Name", "custom-slug"},
		{"derived from name", "", "Kit Kat", "kit-kat"},
		{"whitespace explicit ignored", "   ", "Quality Street", "quality-street"},
		{"accents flattened", "", "Nestlé", "nestle"},
		{"symbols stripped", "", "Coffee & Tea", "coffee-tea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureSlug(tt.explicit, tt.fromName); got != tt.want {
				t.Errorf("EnsureSlug(%q, %q) = %q, want %q", tt.explicit, tt.fromName, got, tt.want)
			}
		})
	}
}
