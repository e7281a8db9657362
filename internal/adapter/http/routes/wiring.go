package routes

import (
	"context"
	"fmt"
	"strings"

	"kiosk_quote/internal/adapter/persistence/repository"
	"kiosk_quote/internal/config"
	"kiosk_quote/internal/infrastructure/auth"
	"kiosk_quote/internal/infrastructure/cache"
	"kiosk_quote/internal/infrastructure/database"
	"kiosk_quote/internal/infrastructure/metrics"
	"kiosk_quote/internal/infrastructure/notifications"
	"kiosk_quote/internal/infrastructure/payments"
	"kiosk_quote/internal/infrastructure/pdf"
	"kiosk_quote/internal/usecase"
	"kiosk_quote/internal/usecase/interfaces"
	"kiosk_quote/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// buildKioskUseCase connects the kiosk use case to its store, lock, payment
// gateway and the optional collaborators. The returned cleanup closes any
// connection that was opened.
func buildKioskUseCase(ctx context.Context, cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) (*usecase.KioskUseCase, func(), error) {
	cleanup := func() {}

	store, err := buildQuoteStore(ctx, cfg, log)
	if err != nil {
		return nil, cleanup, err
	}

	lock, closeLock, err := buildFinalizationLock(ctx, cfg, log)
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = closeLock

	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("payment gateway: %w", err)
	}

	uc := usecase.NewKioskUseCase(store, gateway, lock,
		usecase.WithLogger(log),
		usecase.WithCurrentUserLookup(auth.ContextUserLookup{}),
		usecase.WithNotifier(notifications.NewLogNotifier(log)),
		usecase.WithPDFRenderer(pdf.NewQuoteRenderer(cfg.Kiosk.CompanyName)),
		usecase.WithMetrics(metrics.NewKioskMetrics(reg)),
		usecase.WithAppointmentSlots(cfg.Kiosk.AppointmentSlots),
		usecase.WithSessionTTL(cfg.Kiosk.SessionTTL),
		usecase.WithDepositSettings(usecase.DepositSettings{
			PaymentMethodID:    cfg.Payments.PaymentMethodID,
			FallbackPayerEmail: cfg.Payments.FallbackPayerEmail,
			Description:        cfg.Payments.DepositDescription,
		}),
	)
	return uc, cleanup, nil
}

func buildQuoteStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (interfaces.IQuoteStore, error) {
	if strings.EqualFold(cfg.App.StoreBackend, config.StoreBackendMemory) {
		log.Warn(ctx, "[quote][repository] using in-memory store, drafts are lost on restart")
		return repository.NewQuoteDraftMemoryRepository(), nil
	}
	ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("dynamodb client: %w", err)
	}
	log.Info(ctx, fmt.Sprintf("[quote][repository] dynamodb store table=%s region=%s", cfg.DynamoDB.QuoteTable, cfg.DynamoDB.Region))
	return repository.NewQuoteDraftDynamoRepository(ddb, cfg.DynamoDB.QuoteTable), nil
}

func buildFinalizationLock(ctx context.Context, cfg *config.Config, log *logger.Logger) (interfaces.IFinalizationLock, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info(ctx, "[kiosk][lock] redis disabled, using process-local finalization lock")
		return cache.NewLocalLock(cfg.Redis.LockTTL), func() {}, nil
	}
	client, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, func() {}, fmt.Errorf("redis: %w", err)
	}
	log.Info(ctx, "[kiosk][lock] redis finalization lock enabled")
	return cache.NewRedisLock(client, cfg.Redis.LockTTL), func() {
		if err := client.Close(); err != nil {
			log.Error(context.Background(), "[kiosk][lock] redis close failed", err)
		}
	}, nil
}
