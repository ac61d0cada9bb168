package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/mailer"
	"github.com/stemsi/folio-backend/internal/metrics"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stemsi/folio-backend/internal/repository"
)

const notifyTimeout = 15 * time.Second

// ContactService stores contact-form submissions and notifies the operator.
type ContactService struct {
	contactRepo repository.ContactRepository
	notifier    mailer.Notifier
	now         func() time.Time
	log         zerolog.Logger
}

func NewContactService(contactRepo repository.ContactRepository, notifier mailer.Notifier, log zerolog.Logger) *ContactService {
	if notifier == nil {
		notifier = mailer.NopNotifier{}
	}
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		now:         time.Now,
		log:         log.With().Str("component", "contact_service").Logger(),
	}
}

// Submit inserts exactly one message with status "new" and then attempts the
// notification. A failed notification is logged and does not fail the call:
// the message is already stored and resubmitting would duplicate it.
func (s *ContactService) Submit(ctx context.Context, req model.CreateContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Service:   req.Service,
		Message:   req.Message,
		Status:    model.ContactStatusNew,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).Msg("Failed to store contact message")
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	metrics.ContactSubmissions.WithLabelValues("created").Inc()

	s.notify(ctx, msg)
	return msg, nil
}

func (s *ContactService) notify(ctx context.Context, msg *model.ContactMessage) {
	if _, ok := s.notifier.(mailer.NopNotifier); ok {
		metrics.Notifications.WithLabelValues("skipped").Inc()
		return
	}

	// The visitor hanging up must not cancel a notification for a stored message.
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := s.notifier.NotifyContact(nctx, msg); err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		s.log.Warn().Err(err).Str("message_id", msg.ID).Msg("Contact notification failed")
		return
	}
	metrics.Notifications.WithLabelValues("sent").Inc()
}
