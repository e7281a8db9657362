package interfaces

import (
	"context"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
)

// ICurrentUserLookup resolves the signed-in operator, if any.
type ICurrentUserLookup interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// INotifier is the toast sink. It is fire-and-forget.
type INotifier interface {
	Notify(ctx context.Context, sessionID string, kind entities.NotificationKind, message string)
}

// IFinalizationLock serializes finalization of a draft across API instances.
type IFinalizationLock interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// IQuotePDFRenderer renders a printable quote summary.
type IQuotePDFRenderer interface {
	Render(d entities.QuoteDraft, breakdown pricing.Breakdown) ([]byte, error)
}

// IKioskMetrics records wizard activity.
type IKioskMetrics interface {
	Transition(from, to string)
	ValidationFailure(step string)
	Finalization(outcome string)
	ObserveStore(op string, d time.Duration)
}
