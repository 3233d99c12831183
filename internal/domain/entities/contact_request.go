package entities

import "time"

// ContactStatus is the outcome of relaying a contact form.
type ContactStatus string

const (
	ContactStatusEnviado ContactStatus = "enviado"
	ContactStatusFalhou  ContactStatus = "falhou"
)

// Attachment is the optional file sent with the contact form (photo or floor plan).
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// ContactSubmission is the command built from the contact form.
type ContactSubmission struct {
	SessionID  string
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	EstimateID string
	Attachment *Attachment
}

// ContactRequest is the lead kept after a submission attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (session_id-index): session_id
type ContactRequest struct {
	ID         string        `json:"id"`
	SessionID  string        `json:"session_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Subject    string        `json:"subject,omitempty"`
	Message    string        `json:"message"`
	EstimateID string        `json:"estimate_id,omitempty"`
	Attachment string        `json:"attachment,omitempty"`
	Status     ContactStatus `json:"status"`
	Date       time.Time     `json:"date"`
}
