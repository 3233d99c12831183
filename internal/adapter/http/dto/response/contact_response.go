package response

import (
	"time"

	"marcenaria_site/internal/domain/entities"
)

const ContactSentMessage = "Mensagem enviada com sucesso! Retornaremos em breve."

type ContactResponse struct {
	ContactID string    `json:"contact_id"`
	Status    string    `json:"status" example:"enviado"`
	Message   string    `json:"message"`
	Date      time.Time `json:"date"`
}

func FromContactRequest(c entities.ContactRequest) ContactResponse {
	return ContactResponse{
		ContactID: c.ID,
		Status:    string(c.Status),
		Message:   ContactSentMessage,
		Date:      c.Date,
	}
}
