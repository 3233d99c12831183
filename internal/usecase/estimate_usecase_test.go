package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/domain/services"
	"marcenaria_site/internal/logger"
	mock_interfaces "marcenaria_site/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validWardrobe() entities.EstimateInput {
	return entities.EstimateInput{
		FurnitureType: entities.FurnitureWardrobe,
		Material:      entities.MaterialStandard,
		Handles:       entities.HandleStandard,
		Width:         2,
		Height:        2.4,
		Depth:         60,
	}
}

func TestEstimateUseCase_Calculate(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, logger.NewNop())
		_, err := uc.Calculate(context.Background(), "   ", validWardrobe())
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("validation error is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())

		in := validWardrobe()
		in.FurnitureType = "sofa"
		_, err := uc.Calculate(context.Background(), "sid-1", in)
		if !errors.Is(err, services.ErrUnknownFurnitureType) {
			t.Fatalf("expected ErrUnknownFurnitureType, got %v", err)
		}
		if !IsValidationError(err) {
			t.Fatalf("expected a validation error")
		}
	})

	t.Run("oversized dimensions are rejected before saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())

		in := validWardrobe()
		in.Handles = entities.HandlePremium
		in.Width, in.Height = 1e200, 1e200
		_, err := uc.Calculate(context.Background(), "sid-1", in)
		if !errors.Is(err, services.ErrDimensionOutOfRange) {
			t.Fatalf("expected ErrDimensionOutOfRange, got %v", err)
		}
		if !IsValidationError(err) {
			t.Fatalf("expected a validation error")
		}
	})

	t.Run("missing handles", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, logger.NewNop())
		in := validWardrobe()
		in.Handles = ""
		_, err := uc.Calculate(context.Background(), "sid-1", in)
		if !errors.Is(err, services.ErrMissingHandles) {
			t.Fatalf("expected ErrMissingHandles, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())

		repo.EXPECT().SaveLatest(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Calculate(context.Background(), "sid-1", validWardrobe())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if IsValidationError(err) {
			t.Fatalf("db error must not be a validation error")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())
		fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().SaveLatest(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.SessionID != "sid-1" || !e.CreatedAt.Equal(fixed) {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Result.TotalPrice != 6796.8 {
					t.Fatalf("unexpected total: %v", e.Result.TotalPrice)
				}
				return e, nil
			},
		)

		res, err := uc.Calculate(context.Background(), " sid-1 ", validWardrobe())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Result.Sheets != 2 {
			t.Fatalf("expected 2 sheets, got %d", res.Result.Sheets)
		}
	})
}

func TestEstimateUseCase_GetLatest(t *testing.T) {
	t.Run("invalid session", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, logger.NewNop())
		_, err := uc.GetLatest(context.Background(), "")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())
		repo.EXPECT().GetLatestBySessionID(gomock.Any(), "sid-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetLatest(context.Background(), "sid-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())
		repo.EXPECT().GetLatestBySessionID(gomock.Any(), "sid-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetLatest(context.Background(), "sid-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, logger.NewNop())
		repo.EXPECT().GetLatestBySessionID(gomock.Any(), "sid-1").Return(entities.Estimate{ID: "est-1", SessionID: "sid-1"}, nil)

		e, err := uc.GetLatest(context.Background(), " sid-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "est-1" {
			t.Fatalf("unexpected estimate: %+v", e)
		}
	})
}
