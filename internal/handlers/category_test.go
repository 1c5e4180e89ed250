package handlers

import "testing"

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func boolp(b bool) *bool    { return &b }

func TestCategoryUpdateRequestUpdates(t *testing.T) {
	t.Run("empty request yields no columns", func(t *testing.T) {
		updates := categoryUpdateRequest{}.updates()
		if len(updates) != 0 {
			t.Errorf("updates = %v, want empty", updates)
		}
	})

	t.Run("set fields map to snake_case columns", func(t *testing.T) {
		updates := categoryUpdateRequest{
			Name:      strp("Confectionery"),
			NameAr:    strp("الحلويات"),
			SortOrder: intp(3),
			IsActive:  boolp(false),
		}.updates()

		if len(updates) != 4 {
			t.Fatalf("updates = %v, want 4 columns", updates)
		}
		if updates["name"] != "Confectionery" {
			t.Errorf("name = %v", updates["name"])
		}
		if updates["name_ar"] != "الحلويات" {
			t.Errorf("name_ar = %v", updates["name_ar"])
		}
		if updates["sort_order"] != 3 {
			t.Errorf("sort_order = %v", updates["sort_order"])
		}
		if updates["is_active"] != false {
			t.Errorf("is_active = %v", updates["is_active"])
		}
	})

	t.Run("explicit empty string clears a column", func(t *testing.T) {
		updates := categoryUpdateRequest{Description: strp("")}.updates()
		if value, ok := updates["description"]; !ok || value != "" {
			t.Errorf("updates = %v, want description cleared", updates)
		}
	})
}
