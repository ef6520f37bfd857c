package booking

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	reservations ReservationRepository
	notifs       NotificationSender
}

func NewService(reservations ReservationRepository, notifs NotificationSender) *Service {
	return &Service{
		reservations: reservations,
		notifs:       notifs,
	}
}

// CreateReservation claims [start, end) on a resource for one calendar
// date. The window must be well-formed and must not overlap any existing
// reservation on the same resource and date.
func (s *Service) CreateReservation(ctx context.Context, userID int64, req CreateReservationRequest) (*domain.Reservation, error) {
	date, start, end, err := normalizeWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	r := &domain.Reservation{
		ResourceID: req.ResourceID,
		UserID:     userID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}

	if err := s.reservations.CreateSerialized(ctx, r); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrOverlap):
			return nil, ErrConflict
		}
		// Backstop: the unique index on (resource, date, start) fires when
		// two identical windows race past the transaction on Postgres.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyReservationCreated(ctx, r.UserID, r.ID, r.ResourceID, r.Date, r.StartTime, r.EndTime)
	}

	return r, nil
}

// DeleteReservation removes a reservation; only its owner may do so.
func (s *Service) DeleteReservation(ctx context.Context, reservationID, userID int64) error {
	r, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if r.UserID != userID {
		return ErrForbidden
	}
	return s.reservations.Delete(ctx, reservationID)
}

func (s *Service) ListForResource(ctx context.Context, resourceID int64) ([]domain.Reservation, error) {
	return s.reservations.ListByResource(ctx, resourceID)
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]repository.ReservationDetails, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// normalizeWindow parses and re-formats the date and the two clock times,
// rejecting malformed input and degenerate windows (start must be strictly
// before end; identical values would make the non-overlap invariant
// meaningless).
func normalizeWindow(date, start, end string) (string, string, string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", "", ErrInvalidRange
	}
	st, err := time.Parse("15:04", start)
	if err != nil {
		return "", "", "", ErrInvalidRange
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return "", "", "", ErrInvalidRange
	}
	if !st.Before(et) {
		return "", "", "", ErrInvalidRange
	}
	return d.Format("2006-01-02"), st.Format("15:04"), et.Format("15:04"), nil
}
