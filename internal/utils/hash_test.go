package utils

import "testing"

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("Admin@123456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "Admin@123456" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword(hashed, "Admin@123456") {
		t.Error("CheckPassword rejected correct password")
	}
	if CheckPassword(hashed, "wrong-password") {
		t.Error("CheckPassword accepted wrong password")
	}
}
