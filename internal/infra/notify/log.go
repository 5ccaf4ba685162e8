package notify

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/usecase/commands"
)

// LogNotifier writes events to the structured log when no broker is configured.
type LogNotifier struct {
	observer Observer
}

func NewLogNotifier(observer Observer) *LogNotifier {
	return &LogNotifier{observer: observer}
}

func (n *LogNotifier) Notify(ctx context.Context, event commands.Event, notice commands.BookingNotice) bool {
	slog.InfoContext(ctx, "booking event",
		"event", string(event),
		"booking_id", notice.BookingID.String(),
		"code", notice.Code,
		"tenant_id", notice.TenantID.String(),
		"staff_id", notice.StaffID.String(),
		"starts_at", notice.StartsAt)
	if n.observer != nil {
		n.observer.ObserveNotification(string(event), true)
	}
	return true
}
