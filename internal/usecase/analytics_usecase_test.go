package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/logger"
	mock_interfaces "marcenaria_site/internal/usecase/interfaces/mocks"
	"marcenaria_site/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func syncAnalytics(collector *mock_interfaces.MockIAnalyticsCollector, throttle *ratelimit.Throttle) *AnalyticsUseCase {
	var uc *AnalyticsUseCase
	if collector == nil {
		uc = NewAnalyticsUseCase(nil, throttle, logger.NewNop())
	} else {
		uc = NewAnalyticsUseCase(collector, throttle, logger.NewNop())
	}
	uc.async = func(f func()) { f() }
	return uc
}

func TestAnalyticsUseCase_Track(t *testing.T) {
	t.Run("empty event name", func(t *testing.T) {
		uc := syncAnalytics(nil, nil)
		err := uc.Track(context.Background(), entities.AnalyticsEvent{Name: "  "})
		assert.ErrorIs(t, err, ErrInvalidAnalyticsEvent)
	})

	t.Run("no collector is a no-op", func(t *testing.T) {
		uc := syncAnalytics(nil, nil)
		assert.NoError(t, uc.Track(context.Background(), entities.AnalyticsEvent{Name: entities.EventNavClick}))
	})

	t.Run("forwards with timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		collector := mock_interfaces.NewMockIAnalyticsCollector(ctrl)
		uc := syncAnalytics(collector, nil)
		fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		collector.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, e entities.AnalyticsEvent) error {
				assert.Equal(t, entities.EventWhatsAppClick, e.Name)
				assert.Equal(t, fixed, e.OccurredAt)
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return nil
			},
		)

		err := uc.Track(context.Background(), entities.AnalyticsEvent{Name: entities.EventWhatsAppClick, SessionID: "sid-1"})
		assert.NoError(t, err)
	})

	t.Run("collector failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		collector := mock_interfaces.NewMockIAnalyticsCollector(ctrl)
		uc := syncAnalytics(collector, nil)
		collector.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		assert.NoError(t, uc.Track(context.Background(), entities.AnalyticsEvent{Name: entities.EventFormSubmit}))
	})

	t.Run("throttled repeats are counted but not forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		collector := mock_interfaces.NewMockIAnalyticsCollector(ctrl)
		uc := syncAnalytics(collector, ratelimit.NewThrottle(time.Hour))
		collector.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		ev := entities.AnalyticsEvent{Name: entities.EventButtonClick, Label: "orcamento", SessionID: "sid-1"}
		assert.NoError(t, uc.Track(context.Background(), ev))
		assert.NoError(t, uc.Track(context.Background(), ev))

		ev.Label = "galeria"
		assert.NoError(t, uc.Track(context.Background(), ev))
	})
}
