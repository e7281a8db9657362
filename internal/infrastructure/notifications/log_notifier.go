package notifications

import (
	"context"
	"fmt"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/usecase/interfaces"
	"kiosk_quote/pkg/logger"
)

// LogNotifier writes every kiosk toast to the service log. The screen itself
// receives toasts through the session view.
type LogNotifier struct {
	log *logger.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, sessionID string, kind entities.NotificationKind, message string) {
	ctx = n.log.WithSessionID(ctx, sessionID)
	msg := fmt.Sprintf("[kiosk][toast] kind=%s message=%q", kind, message)
	switch kind {
	case entities.NotificationError:
		n.log.Warn(ctx, msg)
	default:
		n.log.Info(ctx, msg)
	}
}
