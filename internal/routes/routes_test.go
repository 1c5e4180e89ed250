package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/brandsbridge/internal/config"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: "test-secret"}
	Register(app, nil, cfg, nil, nil)
	return app
}

// Anonymous requests to admin routes must be rejected by the auth guard
// before any handler runs; only /content/public, the display lists and the
// settings map are public reads.
func TestAdminRoutesRequireAuth(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"content list", fiber.MethodGet, "/api/content"},
		{"content by key", fiber.MethodGet, "/api/content/hero_title"},
		{"content create", fiber.MethodPost, "/api/content"},
		{"content update", fiber.MethodPatch, "/api/content/hero_title"},
		{"content delete", fiber.MethodDelete, "/api/content/hero_title"},
		{"settings raw list", fiber.MethodGet, "/api/content/settings/all"},
		{"setting upsert", fiber.MethodPatch, "/api/content/settings/company_name"},
		{"category create", fiber.MethodPost, "/api/categories"},
		{"brand create", fiber.MethodPost, "/api/brands"},
		{"product create", fiber.MethodPost, "/api/products"},
		{"product stats", fiber.MethodGet, "/api/products/stats"},
		{"inquiry list", fiber.MethodGet, "/api/inquiries"},
		{"upload list", fiber.MethodGet, "/api/uploads"},
		{"user list", fiber.MethodGet, "/api/users"},
		{"profile", fiber.MethodGet, "/api/auth/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("%s %s: %v", tt.method, tt.path, err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, resp.StatusCode, fiber.StatusUnauthorized)
			}
		})
	}
}

func TestAdminRoutesRejectBadToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/content", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
