package repository

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestNotFoundMapsRecordNotFound(t *testing.T) {
	err := notFound("category", gorm.ErrRecordNotFound)

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %T, want *NotFoundError", err)
	}
	if nf.Resource != "category" {
		t.Errorf("resource = %q", nf.Resource)
	}
}

func TestNotFoundPassesOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	if got := notFound("category", boom); got != boom {
		t.Errorf("got %v, want original error", got)
	}
}

func TestDuplicateErrMessage(t *testing.T) {
	err := duplicateErr("product", "slug")

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %T, want *ConflictError", err)
	}
	if conflict.Message != "product with this slug already exists" {
		t.Errorf("message = %q", conflict.Message)
	}
}
