package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/logger"
	"marcenaria_site/internal/metrics"
	"marcenaria_site/internal/usecase/interfaces"
	"marcenaria_site/pkg/ratelimit"
)

var ErrInvalidAnalyticsEvent = errors.New("invalid analytics event")

const forwardTimeout = 5 * time.Second

//go:generate mockgen -source=analytics_usecase.go -destination=../adapter/http/handlers/mocks/analytics_usecase_mock.go -package=mocks

// IAnalyticsUseCase records site interactions. Tracking never fails the caller's flow.
type IAnalyticsUseCase interface {
	Track(ctx context.Context, event entities.AnalyticsEvent) error
}

type AnalyticsUseCase struct {
	collector interfaces.IAnalyticsCollector
	throttle  *ratelimit.Throttle
	log       *logger.Logger
	async     func(func())
	now       func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase builds the tracker. A nil collector only counts events.
func NewAnalyticsUseCase(collector interfaces.IAnalyticsCollector, throttle *ratelimit.Throttle, log *logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		collector: collector,
		throttle:  throttle,
		log:       log,
		async:     func(f func()) { go f() },
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *AnalyticsUseCase) Track(ctx context.Context, event entities.AnalyticsEvent) error {
	event.Name = entities.AnalyticsEventName(strings.TrimSpace(string(event.Name)))
	if event.Name == "" {
		return ErrInvalidAnalyticsEvent
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = u.now()
	}

	metrics.AnalyticsEvents.WithLabelValues(string(event.Name)).Inc()
	u.log.Debug("analytics event",
		logger.String("event", string(event.Name)),
		logger.String("label", event.Label),
		logger.String("session_id", event.SessionID),
	)

	if u.collector == nil {
		return nil
	}
	if !u.throttle.Allow(event.SessionID + "|" + string(event.Name) + "|" + event.Label) {
		return nil
	}

	// The request context ends with the response; the forward outlives it.
	fwdCtx := context.WithoutCancel(ctx)
	u.async(func() {
		fctx, cancel := context.WithTimeout(fwdCtx, forwardTimeout)
		defer cancel()
		if err := u.collector.Send(fctx, event); err != nil {
			metrics.AnalyticsForwardFailures.Inc()
			u.log.Warn("analytics forward failed", logger.String("event", string(event.Name)), logger.ErrorF(err))
		}
	})
	return nil
}
