package interfaces

import (
	"context"
	"marcenaria_site/internal/domain/entities"
)

//go:generate mockgen -source=contact_gateway_interface.go -destination=mocks/contact_gateway_interface_mock.go -package=mock_interfaces

// IContactGateway relays a contact form to the external form endpoint.
//
// A single attempt is made. Implementations return the HTTP status they got back so the
// use case can tell a rejection from an unreachable endpoint.
type IContactGateway interface {
	Forward(ctx context.Context, submission entities.ContactSubmission) (status int, err error)
}

// IOwnerNotifier tells the workshop a new lead arrived (e-mail, chat).
type IOwnerNotifier interface {
	NotifyContact(ctx context.Context, lead entities.ContactRequest) error
}

// ISubmissionGuard holds a per-session lock while a submission is in flight.
type ISubmissionGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
