package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// EnsureSlug returns the explicit slug when provided, otherwise one derived
// from the name. Explicit slugs are kept verbatim; uniqueness is the
// repository's concern.
func EnsureSlug(explicit, name string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return slug.Make(name)
}
