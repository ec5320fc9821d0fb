package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	authdomain "chat-backend/internal/auth/domain"
	authrepo "chat-backend/internal/auth/repository"
	"chat-backend/internal/message/domain"
	"chat-backend/internal/message/dto"
	"chat-backend/internal/message/repository"
	"chat-backend/pkg/fuzzy"
	"chat-backend/pkg/imagestore"

	"github.com/samber/lo"
)

type messageUsecase struct {
	userRepo    authrepo.UserRepository
	messageRepo repository.MessageRepository
	images      imagestore.Store
	notifier    Notifier
	log         *slog.Logger
}

// NewMessageUsecase creates a new instance of messageUsecase. notifier may be nil.
func NewMessageUsecase(
	userRepo authrepo.UserRepository,
	messageRepo repository.MessageRepository,
	images imagestore.Store,
	notifier Notifier,
	log *slog.Logger,
) MessageUsecase {
	return &messageUsecase{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		images:      images,
		notifier:    notifier,
		log:         log,
	}
}

func (u *messageUsecase) ListUsers(ctx context.Context, currentUserID, search string) ([]authdomain.PublicUser, error) {
	users, err := u.userRepo.ListExcept(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	search = strings.TrimSpace(search)
	if search != "" {
		users = lo.Filter(users, func(user *authdomain.User, _ int) bool {
			return fuzzy.MatchUser(search, user.FullName, user.Email)
		})
		scores := lo.SliceToMap(users, func(user *authdomain.User) (string, float64) {
			return user.ID, fuzzy.UserScore(search, user.FullName, user.Email)
		})
		sort.SliceStable(users, func(i, j int) bool {
			return scores[users[i].ID] > scores[users[j].ID]
		})
	}

	return lo.Map(users, func(user *authdomain.User, _ int) authdomain.PublicUser {
		return user.Public()
	}), nil
}

func (u *messageUsecase) Conversation(ctx context.Context, currentUserID, otherUserID string) ([]*domain.Message, error) {
	otherUserID = strings.TrimSpace(otherUserID)
	if otherUserID == "" {
		return nil, domain.ErrOtherUserRequired
	}

	messages, err := u.messageRepo.Conversation(ctx, currentUserID, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}

func (u *messageUsecase) Send(ctx context.Context, sender *authdomain.User, req *dto.SendMessageRequest) (*domain.Message, error) {
	receiverID := strings.TrimSpace(req.ReceiverID)
	if receiverID == "" {
		return nil, domain.ErrReceiverRequired
	}

	receiver, err := u.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("load receiver: %w", err)
	}
	if receiver == nil {
		return nil, domain.ErrReceiverNotFound
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && req.ImagePath == "" {
		return nil, domain.ErrEmptyMessage
	}

	msg := &domain.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
	}
	if text != "" {
		msg.Text = &text
	}

	if req.ImagePath != "" {
		url, err := u.images.Upload(ctx, req.ImagePath, imagestore.FolderMessages)
		if err != nil {
			return nil, domain.ErrImageUpload.Wrap(err)
		}
		msg.Image = &url
	}

	if err := u.messageRepo.Create(ctx, msg); err != nil {
		if msg.Image != nil {
			u.discardImage(ctx, *msg.Image)
		}
		return nil, fmt.Errorf("store message: %w", err)
	}

	if u.notifier != nil {
		u.notifier.NotifyNewMessage(ctx, msg, sender)
	}
	return msg, nil
}

// discardImage removes an image whose message was never stored.
func (u *messageUsecase) discardImage(ctx context.Context, url string) {
	if err := u.images.Delete(context.WithoutCancel(ctx), url); err != nil {
		u.log.WarnContext(ctx, "delete orphaned image", "url", url, "error", err)
	}
}
