package notification

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	authdomain "chat-backend/internal/auth/domain"
	messagedomain "chat-backend/internal/message/domain"
	notificationdomain "chat-backend/internal/notification/domain"
	"chat-backend/internal/notification/repository"
	"chat-backend/pkg/apperror"
	"chat-backend/pkg/fcm"

	"github.com/samber/lo"
)

const (
	sendTimeout    = 10 * time.Second
	maxPreviewRune = 100
)

var ErrTokenRequired = apperror.Validation("Device token is required")

// Service keeps device registrations and pushes new-message alerts to them.
type Service struct {
	repo   repository.DeviceTokenRepository
	sender fcm.Sender
	log    *slog.Logger
	wg     sync.WaitGroup
}

// NewService creates the service. A nil sender disables pushes while
// registrations keep working.
func NewService(repo repository.DeviceTokenRepository, sender fcm.Sender, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		sender: sender,
		log:    log.With("component", "notification"),
	}
}

func (s *Service) Enabled() bool {
	return s.sender != nil
}

func (s *Service) RegisterDevice(ctx context.Context, userID, token, deviceInfo string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenRequired
	}
	return s.repo.Save(ctx, userID, token, deviceInfo)
}

func (s *Service) UnregisterDevice(ctx context.Context, userID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenRequired
	}
	return s.repo.DeleteForUser(ctx, userID, token)
}

// NotifyNewMessage pushes msg to the receiver's devices in the background.
// Failures are logged and never reach the caller.
func (s *Service) NotifyNewMessage(ctx context.Context, msg *messagedomain.Message, sender *authdomain.User) {
	if s.sender == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
		defer cancel()
		s.deliver(ctx, msg, sender)
	}()
}

// Wait blocks until in-flight pushes finish.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) deliver(ctx context.Context, msg *messagedomain.Message, sender *authdomain.User) {
	tokens, err := s.repo.TokensForUser(ctx, msg.ReceiverID)
	if err != nil {
		s.log.WarnContext(ctx, "load device tokens", "user_id", msg.ReceiverID, "error", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	values := lo.Map(tokens, func(t notificationdomain.DeviceToken, _ int) string { return t.Token })
	stale, err := s.sender.SendToDevices(ctx, values, fcm.NotificationData{
		Title: sender.FullName,
		Body:  preview(msg),
		Data: map[string]string{
			"type":         "new_message",
			"messageId":    msg.ID,
			"senderId":     msg.SenderID,
			"click_action": "/",
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "push new message", "message_id", msg.ID, "error", err)
	}

	// Batches sent before an error may still have reported stale tokens.
	if len(stale) > 0 {
		if err := s.repo.DeleteTokens(ctx, stale); err != nil {
			s.log.WarnContext(ctx, "prune stale tokens", "count", len(stale), "error", err)
			return
		}
		s.log.InfoContext(ctx, "pruned stale tokens", "count", len(stale))
	}
}

func preview(msg *messagedomain.Message) string {
	if msg.Text == nil || *msg.Text == "" {
		return "Sent you an image"
	}
	text := *msg.Text
	if utf8.RuneCountInString(text) <= maxPreviewRune {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxPreviewRune-3]) + "..."
}
