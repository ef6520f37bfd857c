package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"fieldops/internal/domain"
)

// Service is the notification sink: it persists a notification row, pushes
// it to the websocket hub and, where a recipient number is configured,
// relays through the WhatsApp gateway. Dispatch runs detached from the
// calling operation and every failure is logged and swallowed.
type Service struct {
	repo             *Repository
	hub              *Hub
	gateway          *WhatsAppGateway
	defaultRecipient string
}

func NewService(repo *Repository, hub *Hub, gateway *WhatsAppGateway, defaultRecipient string) *Service {
	return &Service{
		repo:             repo,
		hub:              hub,
		gateway:          gateway,
		defaultRecipient: defaultRecipient,
	}
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) NotifyTaskAssigned(_ context.Context, assigneeID, resourceID int64, resourceName, taskType string) {
	s.dispatch(assigneeID, domain.NotifTaskAssigned,
		"Nueva tarea asignada",
		fmt.Sprintf("Se te ha asignado %q (%s).", resourceName, taskType),
		"")
}

func (s *Service) NotifyTaskCompleted(_ context.Context, assigneeID, resourceID int64, resourceName string, completedAt time.Time) {
	s.dispatch(assigneeID, domain.NotifTaskCompleted,
		"Instalacion completada",
		fmt.Sprintf("¡Hola! Tu instalacion de %s ha sido completada con exito. Fecha de finalizacion: %s.",
			resourceName, completedAt.Format("2006-01-02 15:04:05")),
		s.defaultRecipient)
}

func (s *Service) NotifyReservationCreated(_ context.Context, userID, reservationID, resourceID int64, date, start, end string) {
	s.dispatch(userID, domain.NotifReservationCreated,
		"Reserva confirmada",
		fmt.Sprintf("Tu reserva del %s de %s a %s quedo registrada.", date, start, end),
		"")
}

// dispatch runs in its own goroutine with a fresh context so the primary
// operation returns without waiting on storage, sockets or the gateway.
func (s *Service) dispatch(userID int64, t domain.NotificationType, title, message, gatewayRecipient string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		n := &domain.Notification{
			UserID:  userID,
			Type:    t,
			Title:   title,
			Message: message,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			log.Printf("notification_store_failed user_id=%d type=%s error=%q", userID, t, err)
		}

		if s.hub != nil {
			s.hub.SendToUser(userID, n)
		}

		if gatewayRecipient != "" && s.gateway != nil {
			if err := s.gateway.Send(ctx, gatewayRecipient, message); err != nil {
				log.Printf("notification_gateway_failed user_id=%d type=%s error=%q", userID, t, err)
			}
		}
	}()
}
