package models

import "time"

type InquiryType string

const (
	InquiryTypeGeneral     InquiryType = "GENERAL"
	InquiryTypeBusiness    InquiryType = "BUSINESS"
	InquiryTypePartnership InquiryType = "PARTNERSHIP"
	InquiryTypeSupport     InquiryType = "SUPPORT"
)

type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "NEW"
	InquiryStatusInProgress InquiryStatus = "IN_PROGRESS"
	InquiryStatusResponded  InquiryStatus = "RESPONDED"
	InquiryStatusClosed     InquiryStatus = "CLOSED"
)

// ValidInquiryType reports whether t is one of the known inquiry types.
func ValidInquiryType(t InquiryType) bool {
	switch t {
	case InquiryTypeGeneral, InquiryTypeBusiness, InquiryTypePartnership, InquiryTypeSupport:
		return true
	}
	return false
}

// ValidInquiryStatus reports whether s is one of the known inquiry statuses.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResponded, InquiryStatusClosed:
		return true
	}
	return false
}

// Inquiry is a contact form submission. Created by the public site only;
// status and notes are managed by admins afterwards.
type Inquiry struct {
	BaseModel
	Type        InquiryType   `gorm:"index" json:"type"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Company     string        `json:"company,omitempty"`
	Country     string        `json:"country,omitempty"`
	Subject     string        `json:"subject,omitempty"`
	Message     string        `json:"message"`
	Status      InquiryStatus `gorm:"index" json:"status"`
	Notes       string        `json:"notes,omitempty"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
}
