package request

import (
	"io"
	"mime/multipart"
	"strings"

	"marcenaria_site/internal/domain/entities"
)

// Contact form field names.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldSubject    = "subject"
	FieldMessage    = "message"
	FieldEstimateID = "estimate_id"
	FieldAttachment = "attachment"
)

// ContactForm is the multipart body of the contact form, shared by the page and the API.
type ContactForm struct {
	Name       string `form:"name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Subject    string `form:"subject"`
	Message    string `form:"message"`
	EstimateID string `form:"estimate_id"`
}

func (f ContactForm) ToSubmission(sessionID string, attachment *entities.Attachment) entities.ContactSubmission {
	return entities.ContactSubmission{
		SessionID:  sessionID,
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Subject:    f.Subject,
		Message:    f.Message,
		EstimateID: f.EstimateID,
		Attachment: attachment,
	}
}

// ReadAttachment loads an uploaded file, reading at most limit+1 bytes. Size keeps the
// declared length so an oversized upload is still reported as such. An empty file input
// yields nil.
func ReadAttachment(fh *multipart.FileHeader, limit int64) (*entities.Attachment, error) {
	if fh == nil || (fh.Size == 0 && strings.TrimSpace(fh.Filename) == "") {
		return nil, nil
	}

	a := &entities.Attachment{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
	if fh.Size > limit {
		return a, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a.Data, err = io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	return a, nil
}
