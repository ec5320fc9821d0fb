package fcm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	require.Equal(t, "***", Redact(""))
	require.Equal(t, "***", Redact("short-token"))
	require.Equal(t, "abcdefghijkl...", Redact("abcdefghijklmnopqrstuvwxyz"))
}

func TestSendToDevices_NoTokens(t *testing.T) {
	var c Client
	failed, err := c.SendToDevices(t.Context(), nil, NotificationData{Title: "hi"})
	require.NoError(t, err)
	require.Nil(t, failed)
}

func TestBuildMulticast(t *testing.T) {
	msg := buildMulticast([]string{"a", "b"}, NotificationData{
		Title: "Ada",
		Body:  "hi",
		Data:  map[string]string{"senderId": "u1"},
	})
	require.Equal(t, []string{"a", "b"}, msg.Tokens)
	require.Equal(t, "Ada", msg.Notification.Title)
	require.Equal(t, "hi", msg.Webpush.Notification.Body)
	require.Equal(t, "u1", msg.Android.Notification.Tag)
	require.Equal(t, "high", msg.Android.Priority)
}

func TestIsStale(t *testing.T) {
	require.False(t, isStale(nil))
	require.False(t, isStale(errors.New("timeout")))
}
