package model

// MessageType discriminates the conversations/messages payload.
type MessageType string

const (
	MessageTypeSMS   MessageType = "SMS"
	MessageTypeEmail MessageType = "Email"
)

func (t MessageType) String() string { return string(t) }

// SMSRequest is an SMS send instruction. The contact may be addressed either
// by CRM contact id or by recipient phone number.
type SMSRequest struct {
	ContactID string `json:"contactId"`
	Recipient string `json:"recipient"` // E.164-ish phone, alternative to contactId
	Body      string `json:"body"`
}

// EmailRequest is an email send instruction for a contact's primary address.
type EmailRequest struct {
	ContactID string `json:"contactId"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
