package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

// Service keeps the in-memory log of customer notifications
type Service struct {
	mu            sync.Mutex
	logger        *logger.Logger
	notifications []models.Notification
}

// NewService creates an empty notification service
func NewService(log *logger.Logger) *Service {
	return &Service{logger: log}
}

// Send records an unread notification for the client and returns it.
// An empty type defaults to info.
func (s *Service) Send(client, message string, ntype models.NotificationType) models.Notification {
	if ntype == "" {
		ntype = models.NotificationInfo
	}

	notification := models.Notification{
		ID:      uuid.NewString(),
		Client:  client,
		Message: message,
		Type:    ntype,
		SentAt:  time.Now(),
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, notification)
	s.mu.Unlock()

	s.logger.Info("notification_sent", message, notification.ID, map[string]interface{}{
		"client": client,
		"type":   string(ntype),
	})

	return notification
}

// MarkRead marks the notification read and reports whether it was found
func (s *Service) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

// For returns every notification sent to the client
func (s *Service) For(client string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Notification
	for _, notification := range s.notifications {
		if notification.Client == client {
			out = append(out, notification)
		}
	}
	return out
}

// UnreadFor returns the client's notifications that are still unread
func (s *Service) UnreadFor(client string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Notification
	for _, notification := range s.notifications {
		if notification.Client == client && !notification.Read {
			out = append(out, notification)
		}
	}
	return out
}
