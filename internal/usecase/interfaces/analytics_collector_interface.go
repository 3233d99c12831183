package interfaces

import (
	"context"
	"marcenaria_site/internal/domain/entities"
)

//go:generate mockgen -source=analytics_collector_interface.go -destination=mocks/analytics_collector_interface_mock.go -package=mock_interfaces

// IAnalyticsCollector forwards site events to an external analytics service.
type IAnalyticsCollector interface {
	Send(ctx context.Context, event entities.AnalyticsEvent) error
}
