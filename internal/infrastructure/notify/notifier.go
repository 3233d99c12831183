package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"
)

// MultiNotifier fans a lead out to every configured channel. One failing channel does
// not stop the others; the errors are joined.
type MultiNotifier struct {
	channels []interfaces.IOwnerNotifier
}

var _ interfaces.IOwnerNotifier = (*MultiNotifier)(nil)

func NewMultiNotifier(channels ...interfaces.IOwnerNotifier) *MultiNotifier {
	out := make([]interfaces.IOwnerNotifier, 0, len(channels))
	for _, c := range channels {
		if c != nil {
			out = append(out, c)
		}
	}
	return &MultiNotifier{channels: out}
}

func (m *MultiNotifier) Len() int { return len(m.channels) }

func (m *MultiNotifier) NotifyContact(ctx context.Context, lead entities.ContactRequest) error {
	var errs []error
	for _, c := range m.channels {
		if err := c.NotifyContact(ctx, lead); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func leadSubject(lead entities.ContactRequest) string {
	if lead.Subject != "" {
		return "Novo contato pelo site: " + lead.Subject
	}
	return "Novo contato pelo site"
}

func leadText(lead entities.ContactRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", lead.Name)
	fmt.Fprintf(&b, "E-mail: %s\n", lead.Email)
	if lead.Phone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", lead.Phone)
	}
	if lead.EstimateID != "" {
		fmt.Fprintf(&b, "Orçamento: %s\n", lead.EstimateID)
	}
	if lead.Attachment != "" {
		fmt.Fprintf(&b, "Anexo: %s\n", lead.Attachment)
	}
	b.WriteString("\n")
	b.WriteString(lead.Message)
	return b.String()
}
