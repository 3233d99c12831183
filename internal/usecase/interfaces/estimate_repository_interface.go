package interfaces

import (
	"context"
	"marcenaria_site/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_interface_mock.go -package=mock_interfaces

// IEstimateRepository keeps the latest estimate of each visitor session.
//
// The site must be able to:
//   - store the result of the estimator (last write wins per session)
//   - read it back when the visitor asks for a quote from the contact form

type IEstimateRepository interface {
	SaveLatest(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetLatestBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error)
}
