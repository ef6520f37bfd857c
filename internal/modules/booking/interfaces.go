package booking

import (
	"context"

	"fieldops/internal/domain"
	"fieldops/internal/repository"
)

// ReservationRepository is the ledger storage. CreateSerialized must run
// the overlap check and the insert under a per-resource serialization
// boundary.
type ReservationRepository interface {
	CreateSerialized(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	ListByResource(ctx context.Context, resourceID int64) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.ReservationDetails, error)
}

// NotificationSender dispatches best-effort outbound messages. Failures
// are logged by the implementation and never fail the booking.
type NotificationSender interface {
	NotifyReservationCreated(ctx context.Context, userID, reservationID, resourceID int64, date, start, end string)
}
