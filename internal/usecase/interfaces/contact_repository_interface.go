package interfaces

import (
	"context"
	"marcenaria_site/internal/domain/entities"
)

//go:generate mockgen -source=contact_repository_interface.go -destination=mocks/contact_repository_interface_mock.go -package=mock_interfaces

// IContactRepository persists the leads produced by the contact form.

type IContactRepository interface {
	Create(ctx context.Context, c entities.ContactRequest) (entities.ContactRequest, error)
	GetByID(ctx context.Context, id string) (entities.ContactRequest, error)
}
