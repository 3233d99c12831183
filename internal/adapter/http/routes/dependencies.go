package routes

import (
	"context"
	"fmt"

	"marcenaria_site/internal/adapter/persistence/repository"
	"marcenaria_site/internal/config"
	"marcenaria_site/internal/infrastructure/analytics"
	"marcenaria_site/internal/infrastructure/cache"
	"marcenaria_site/internal/infrastructure/database"
	"marcenaria_site/internal/infrastructure/formrelay"
	"marcenaria_site/internal/infrastructure/notify"
	"marcenaria_site/internal/logger"
	"marcenaria_site/internal/usecase"
	"marcenaria_site/internal/usecase/interfaces"
	"marcenaria_site/pkg/ratelimit"
)

// Dependencies are the use cases behind both the pages and the API.
type Dependencies struct {
	Site      *config.SiteStore
	Estimates usecase.IEstimateUseCase
	Contacts  usecase.IContactUseCase
	Analytics usecase.IAnalyticsUseCase

	closers []func() error
}

// Close releases connections opened while wiring.
func (d *Dependencies) Close() {
	for _, c := range d.closers {
		_ = c()
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, appLog *logger.Logger) (*Dependencies, error) {
	deps := &Dependencies{Site: config.NewSiteStore(cfg.Site)}

	estimateRepo, contactRepo, err := buildRepositories(ctx, cfg.Storage, appLog)
	if err != nil {
		return nil, err
	}

	gateway, err := formrelay.NewFormRelayGateway(cfg.Contact.Endpoint, cfg.Contact.Timeout, cfg.Contact.Mock, appLog)
	if err != nil {
		return nil, fmt.Errorf("contact gateway: %w", err)
	}

	guard := buildSubmissionGuard(ctx, cfg.Redis, appLog, deps)
	notifier := buildNotifier(ctx, cfg.Notify, appLog)

	collector, err := buildCollector(cfg.Analytics)
	if err != nil {
		return nil, err
	}

	deps.Estimates = usecase.NewEstimateUseCase(estimateRepo, appLog)
	deps.Contacts = usecase.NewContactUseCase(contactRepo, gateway, notifier, guard, appLog)
	deps.Analytics = usecase.NewAnalyticsUseCase(collector, ratelimit.NewThrottle(cfg.Analytics.ThrottleWindow), appLog)
	return deps, nil
}

func buildRepositories(ctx context.Context, cfg config.StorageConfig, appLog *logger.Logger) (interfaces.IEstimateRepository, interfaces.IContactRepository, error) {
	if cfg.Driver != "dynamodb" {
		appLog.Info("using in-memory storage")
		return repository.NewEstimateMemoryRepository(), repository.NewContactMemoryRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("dynamodb: %w", err)
	}
	// Local endpoints (dynamodb-local, localstack) start empty.
	if cfg.DynamoDB.Endpoint != "" {
		if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB); err != nil {
			return nil, nil, fmt.Errorf("dynamodb tables: %w", err)
		}
	}
	appLog.Info("using dynamodb storage", logger.String("region", cfg.DynamoDB.Region))
	return repository.NewEstimateDynamoRepository(ddb, cfg.DynamoDB.EstimatesTable),
		repository.NewContactDynamoRepository(ddb, cfg.DynamoDB.ContactsTable),
		nil
}

// buildSubmissionGuard prefers redis so the guard holds across instances. An unreachable
// redis falls back to the in-process guard.
func buildSubmissionGuard(ctx context.Context, cfg config.RedisConfig, appLog *logger.Logger, deps *Dependencies) interfaces.ISubmissionGuard {
	if cfg.Addr == "" {
		return cache.NewMemorySubmissionGuard(cfg.LockTTL)
	}
	rdb, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		appLog.Warn("redis unavailable, using in-memory submission guard", logger.String("addr", cfg.Addr), logger.ErrorF(err))
		return cache.NewMemorySubmissionGuard(cfg.LockTTL)
	}
	deps.closers = append(deps.closers, rdb.Close)
	return cache.NewRedisSubmissionGuard(rdb, cfg.LockTTL)
}

func buildNotifier(ctx context.Context, cfg config.NotifyConfig, appLog *logger.Logger) interfaces.IOwnerNotifier {
	var channels []interfaces.IOwnerNotifier

	if cfg.SES.Enabled() {
		n, err := notify.NewSESNotifier(ctx, cfg.SES.Region, cfg.SES.Sender, cfg.SES.Recipient)
		if err != nil {
			appLog.Warn("ses notifier disabled", logger.ErrorF(err))
		} else {
			channels = append(channels, n)
		}
	}
	if cfg.Telegram.Enabled() {
		n, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLog.Warn("telegram notifier disabled", logger.ErrorF(err))
		} else {
			channels = append(channels, n)
		}
	}

	multi := notify.NewMultiNotifier(channels...)
	if multi.Len() == 0 {
		return nil
	}
	appLog.Info("owner notifications enabled", logger.Int("channels", multi.Len()))
	return multi
}

func buildCollector(cfg config.AnalyticsConfig) (interfaces.IAnalyticsCollector, error) {
	if cfg.CollectorURL == "" {
		return nil, nil
	}
	c, err := analytics.NewHTTPCollector(cfg.CollectorURL, cfg.MeasurementID, cfg.APISecret, 0)
	if err != nil {
		return nil, err
	}
	return c, nil
}
