package service

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier pushes short operational messages to the clinic staff channel.
// Delivery is best effort; booking flows never fail because a notification
// did not go out.
type Notifier interface {
	Notify(message string)
}

// TelegramNotifier sends messages through the Telegram bot API.
type TelegramNotifier struct {
	log    *logrus.Logger
	client *http.Client
	token  string
	chatID string
}

func NewTelegramNotifier(log *logrus.Logger, token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		log:    log,
		client: &http.Client{Timeout: 5 * time.Second},
		token:  token,
		chatID: chatID,
	}
}

// Notify posts the message in the background. Errors are logged and dropped.
func (n *TelegramNotifier) Notify(message string) {
	go func() {
		endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.token)
		form := url.Values{
			"chat_id": {n.chatID},
			"text":    {message},
		}

		resp, err := n.client.PostForm(endpoint, form)
		if err != nil {
			n.log.Warnf("Failed to send telegram notification: %+v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			n.log.Warnf("Telegram notification rejected with status %d", resp.StatusCode)
		}
	}()
}

// NopNotifier discards every message. Used when no bot token is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// BuildNotifier picks the Telegram notifier when credentials are present.
func BuildNotifier(log *logrus.Logger, token, chatID string) Notifier {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(chatID) == "" {
		log.Info("Telegram credentials absent, notifications disabled")
		return NopNotifier{}
	}
	return NewTelegramNotifier(log, token, chatID)
}
