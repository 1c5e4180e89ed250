package services

import (
	"strings"
	"testing"
)

func TestFormatInquiry(t *testing.T) {
	text := FormatInquiry(InquiryNotification{
		Type:      "BUSINESS",
		FirstName: "Aisha",
		LastName:  "Rahman",
		Email:     "aisha@example.com",
		Phone:     "+971501234567",
		Company:   "Gulf Imports LLC",
		Country:   "UAE",
		Subject:   "Bulk order",
		Message:   "Interested in wholesale pricing for confectionery.",
	})

	for _, want := range []string{
		"NEW INQUIRY",
		"BUSINESS",
		"Aisha Rahman",
		"aisha@example.com",
		"+971501234567",
		"Gulf Imports LLC",
		"UAE",
		"Bulk order",
		"Interested in wholesale pricing",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q:\n%s", want, text)
		}
	}
}

func TestFormatInquiryOmitsEmptyFields(t *testing.T) {
	text := FormatInquiry(InquiryNotification{
		Type:      "GENERAL",
		FirstName: "Omar",
		LastName:  "Ali",
		Email:     "omar@example.com",
		Message:   "Hello",
	})

	for _, label := range []string{"Phone:", "Company:", "Country:", "Subject:"} {
		if strings.Contains(text, label) {
			t.Errorf("message contains %q for empty field:\n%s", label, text)
		}
	}
}

func TestFormatInquiryTruncatesLongMessage(t *testing.T) {
	long := strings.Repeat("a", 600)
	text := FormatInquiry(InquiryNotification{
		Type:      "GENERAL",
		FirstName: "Omar",
		LastName:  "Ali",
		Email:     "omar@example.com",
		Message:   long,
	})

	if strings.Contains(text, long) {
		t.Error("message not truncated")
	}
	if !strings.Contains(text, strings.Repeat("a", 500)+"…") {
		t.Error("truncation marker missing")
	}
}
