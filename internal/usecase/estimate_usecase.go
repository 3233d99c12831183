package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/domain/services"
	"marcenaria_site/internal/logger"
	"marcenaria_site/internal/metrics"
	"marcenaria_site/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase_mock.go -package=mocks

// IEstimateUseCase exposes the price estimator.
//
//   - "Calcular orçamento" => Calculate()
//   - "Solicitar orçamento" (contact pre-fill) => GetLatest()

type IEstimateUseCase interface {
	Calculate(ctx context.Context, sessionID string, input entities.EstimateInput) (entities.Estimate, error)
	GetLatest(ctx context.Context, sessionID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo       interfaces.IEstimateRepository
	calculator *services.PricingCalculator
	log        *logger.Logger
	now        func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, log *logger.Logger) *EstimateUseCase {
	return &EstimateUseCase{
		repo:       repo,
		calculator: services.NewPricingCalculator(),
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateUseCase) Calculate(ctx context.Context, sessionID string, input entities.EstimateInput) (entities.Estimate, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Estimate{}, ErrInvalidSessionID
	}

	result, err := u.calculator.Calculate(input)
	if err != nil {
		metrics.EstimatesRejected.WithLabelValues(rejectReason(err)).Inc()
		u.log.Info("estimate rejected", logger.String("session_id", sessionID), logger.ErrorF(err))
		return entities.Estimate{}, err
	}

	e := entities.Estimate{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Input:     input,
		Result:    result,
		CreatedAt: u.now(),
	}
	saved, err := u.repo.SaveLatest(ctx, e)
	if err != nil {
		u.log.Error("estimate save failed", logger.String("session_id", sessionID), logger.ErrorF(err))
		return entities.Estimate{}, err
	}

	metrics.EstimatesComputed.WithLabelValues(string(input.FurnitureType)).Inc()
	u.log.Info("estimate computed",
		logger.String("session_id", sessionID),
		logger.String("estimate_id", saved.ID),
		logger.String("furniture_type", string(input.FurnitureType)),
		logger.Float64("total_price", result.TotalPrice),
	)
	return saved, nil
}

func (u *EstimateUseCase) GetLatest(ctx context.Context, sessionID string) (entities.Estimate, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Estimate{}, ErrInvalidSessionID
	}

	e, err := u.repo.GetLatestBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// IsValidationError reports whether err rejects the input rather than the system.
func IsValidationError(err error) bool {
	return errors.Is(err, services.ErrUnknownFurnitureType) ||
		errors.Is(err, services.ErrMissingMaterial) ||
		errors.Is(err, services.ErrMissingHandles) ||
		errors.Is(err, services.ErrDimensionOutOfRange)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, services.ErrUnknownFurnitureType):
		return "furniture_type"
	case errors.Is(err, services.ErrMissingMaterial):
		return "material"
	case errors.Is(err, services.ErrMissingHandles):
		return "handles"
	case errors.Is(err, services.ErrDimensionOutOfRange):
		return "out_of_range"
	default:
		return "other"
	}
}
