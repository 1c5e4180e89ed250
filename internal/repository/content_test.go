package repository

import (
	"testing"

	"github.com/example/brandsbridge/internal/models"
)

func TestFoldContent(t *testing.T) {
	rows := []models.Content{
		{Key: "hero_title", Type: models.ContentTypeText, Value: "Your Gateway to Global Brands", ValueAr: "بوابتك للعلامات التجارية العالمية", Section: "hero"},
		{Key: "about_text", Type: models.ContentTypeHTML, Value: "<p>About us</p>", Section: "about"},
	}

	folded := FoldContent(rows)

	if len(folded) != 2 {
		t.Fatalf("len = %d, want 2", len(folded))
	}

	hero, ok := folded["hero_title"]
	if !ok {
		t.Fatal("hero_title missing")
	}
	if hero.Value != "Your Gateway to Global Brands" {
		t.Errorf("value = %q", hero.Value)
	}
	if hero.ValueAr != "بوابتك للعلامات التجارية العالمية" {
		t.Errorf("valueAr = %q", hero.ValueAr)
	}
	if hero.Type != models.ContentTypeText {
		t.Errorf("type = %q", hero.Type)
	}

	if folded["about_text"].Type != models.ContentTypeHTML {
		t.Errorf("about_text type = %q", folded["about_text"].Type)
	}
}

func TestFoldContentDuplicateKeyLastWins(t *testing.T) {
	rows := []models.Content{
		{Key: "k", Value: "first"},
		{Key: "k", Value: "second"},
	}

	if got := FoldContent(rows)["k"].Value; got != "second" {
		t.Errorf("value = %q, want second", got)
	}
}

func TestFoldContentEmpty(t *testing.T) {
	folded := FoldContent(nil)
	if folded == nil {
		t.Fatal("want empty map, got nil")
	}
	if len(folded) != 0 {
		t.Errorf("len = %d, want 0", len(folded))
	}
}

func TestFoldSettings(t *testing.T) {
	rows := []models.Setting{
		{Key: "company_name", Value: "Brands Bridge International", Type: "string", Group: "general"},
		{Key: "company_email", Value: "info@brandsbridgeintl.com", Type: "string", Group: "contact"},
	}

	folded := FoldSettings(rows)

	want := map[string]string{
		"company_name":  "Brands Bridge International",
		"company_email": "info@brandsbridgeintl.com",
	}
	if len(folded) != len(want) {
		t.Fatalf("len = %d, want %d", len(folded), len(want))
	}
	for key, value := range want {
		if folded[key] != value {
			t.Errorf("%s = %q, want %q", key, folded[key], value)
		}
	}
}
