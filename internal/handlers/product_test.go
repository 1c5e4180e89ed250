package handlers

import "testing"

func TestProductUpdateRequestUpdates(t *testing.T) {
	t.Run("empty request yields no columns", func(t *testing.T) {
		updates := productUpdateRequest{}.updates()
		if len(updates) != 0 {
			t.Errorf("updates = %v, want empty", updates)
		}
	})

	t.Run("empty sku clears the column", func(t *testing.T) {
		updates := productUpdateRequest{SKU: strp("")}.updates()
		if value, ok := updates["sku"]; !ok || value != nil {
			t.Errorf("updates = %v, want sku set to nil", updates)
		}
	})

	t.Run("non-empty sku is kept", func(t *testing.T) {
		updates := productUpdateRequest{SKU: strp("NEST-001")}.updates()
		if updates["sku"] != "NEST-001" {
			t.Errorf("sku = %v", updates["sku"])
		}
	})

	t.Run("images and specifications convert to column types", func(t *testing.T) {
		updates := productUpdateRequest{
			Images:         []string{"a.png", "b.png"},
			Specifications: map[string]interface{}{"weight": "45g"},
		}.updates()

		if _, ok := updates["images"]; !ok {
			t.Error("images column missing")
		}
		if _, ok := updates["specifications"]; !ok {
			t.Error("specifications column missing")
		}
	})
}
