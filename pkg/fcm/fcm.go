package fcm

//go:generate mockgen -source=fcm.go -destination=../../internal/mocks/mock_sender.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/samber/lo"
	"google.golang.org/api/option"
)

// Sender delivers a push notification to a set of device tokens and
// returns the tokens that are no longer valid.
type Sender interface {
	SendToDevices(ctx context.Context, tokens []string, notification NotificationData) ([]string, error)
}

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
	log             *slog.Logger
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(ctx context.Context, credentialsFile string, log *slog.Logger) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log = log.With("component", "fcm")
	log.Info("client initialized")
	return &Client{
		messagingClient: messagingClient,
		log:             log,
	}, nil
}

// NotificationData contains the data to send in a push notification
type NotificationData struct {
	Title    string
	Body     string
	ImageURL string            // optional
	Data     map[string]string // custom payload
}

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// SendToDevices fans the notification out in batches. Only tokens FCM
// reports as unregistered or malformed are returned; transient failures
// are logged and the token is kept.
func (c *Client) SendToDevices(ctx context.Context, tokens []string, notification NotificationData) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var stale []string
	for _, batch := range lo.Chunk(tokens, maxMulticastTokens) {
		response, err := c.messagingClient.SendEachForMulticast(ctx, buildMulticast(batch, notification))
		if err != nil {
			return stale, fmt.Errorf("failed to send FCM multicast message: %w", err)
		}
		c.log.DebugContext(ctx, "multicast sent", "success", response.SuccessCount, "failure", response.FailureCount)

		for i, resp := range response.Responses {
			if resp.Success {
				continue
			}
			if isStale(resp.Error) {
				stale = append(stale, batch[i])
				continue
			}
			c.log.WarnContext(ctx, "delivery failed", "token", Redact(batch[i]), "error", resp.Error)
		}
	}
	return stale, nil
}

func isStale(err error) bool {
	return err != nil && (messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err))
}

func buildMulticast(tokens []string, n NotificationData) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title:    n.Title,
			Body:     n.Body,
			ImageURL: n.ImageURL,
		},
		Data: n.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Tag: n.Data["senderId"],
			},
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: n.Title,
				Body:  n.Body,
				Icon:  "/avatar.png",
			},
		},
	}
}

// Redact shortens a device token for logs.
func Redact(token string) string {
	if len(token) <= 12 {
		return "***"
	}
	return token[:12] + "..."
}
