package utils

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, DefaultLimit, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"first page", 1, 20, 1, 20, 0},
		{"third page", 3, 20, 3, 20, 40},
		{"small limit", 5, 2, 5, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("NewPagination(%d, %d) = %+v, want page=%d limit=%d offset=%d",
					tt.page, tt.limit, p, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestPaginationMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int64
		wantTotalPages int
	}{
		{"empty set", 1, 20, 0, 0},
		{"exact pages", 1, 20, 40, 2},
		{"partial last page", 1, 20, 41, 3},
		{"single row", 1, 20, 1, 1},
		{"limit one", 4, 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPagination(tt.page, tt.limit).Meta(tt.total)
			if meta.TotalPages != tt.wantTotalPages {
				t.Errorf("Meta(%d) totalPages = %d, want %d", tt.total, meta.TotalPages, tt.wantTotalPages)
			}
			if meta.Total != tt.total {
				t.Errorf("Meta(%d) total = %d", tt.total, meta.Total)
			}
			if meta.Page != tt.page || meta.Limit != tt.limit {
				t.Errorf("Meta(%d) echoed page/limit = %d/%d, want %d/%d",
					tt.total, meta.Page, meta.Limit, tt.page, tt.limit)
			}
		})
	}
}

func TestParseIntFallback(t *testing.T) {
	if got := parseInt("", 7); got != 7 {
		t.Errorf("parseInt(\"\") = %d, want fallback 7", got)
	}
	if got := parseInt("abc", 7); got != 7 {
		t.Errorf("parseInt(\"abc\") = %d, want fallback 7", got)
	}
	if got := parseInt("12", 7); got != 12 {
		t.Errorf("parseInt(\"12\") = %d, want 12", got)
	}
}
