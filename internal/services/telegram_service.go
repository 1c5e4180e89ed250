package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// InquiryNotification contains inquiry data for the admin notification.
type InquiryNotification struct {
	Type      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Country   string
	Subject   string
	Message   string
}

// FormatInquiry renders the admin notification text for a new inquiry.
func FormatInquiry(n InquiryNotification) string {
	var b strings.Builder
	b.WriteString("<b>📨 NEW INQUIRY</b>\n")
	fmt.Fprintf(&b, "<b>Type:</b> %s\n", n.Type)
	fmt.Fprintf(&b, "<b>From:</b> %s %s\n", n.FirstName, n.LastName)
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", n.Email)
	if n.Phone != "" {
		fmt.Fprintf(&b, "<b>Phone:</b> %s\n", n.Phone)
	}
	if n.Company != "" {
		fmt.Fprintf(&b, "<b>Company:</b> %s\n", n.Company)
	}
	if n.Country != "" {
		fmt.Fprintf(&b, "<b>Country:</b> %s\n", n.Country)
	}
	if n.Subject != "" {
		fmt.Fprintf(&b, "<b>Subject:</b> %s\n", n.Subject)
	}

	message := n.Message
	if len(message) > 500 {
		message = message[:500] + "…"
	}
	fmt.Fprintf(&b, "\n%s", message)

	return strings.TrimSpace(b.String())
}

// NotifyNewInquiry sends a notification about a new inquiry to the admin
// chat. Failures are logged, never surfaced to the submitter.
func (s *TelegramService) NotifyNewInquiry(n InquiryNotification) error {
	if s.adminChatID == "" {
		return nil
	}
	return s.SendToAdmin(FormatInquiry(n))
}
