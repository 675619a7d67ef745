package notify

import (
	"log/slog"

	"github.com/gregdel/pushover"
)

const (
	// Pushover rejects messages longer than this.
	maxMessageLength = 1024
)

type Notifier interface {
	Notify(title, message, url string) error
}

type Pushover struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
}

// NewPushover returns a notifier for the given app token and user key. If
// either is empty the notifier only logs.
func NewPushover(token, recipient string) *Pushover {
	if token == "" || recipient == "" {
		return &Pushover{}
	}
	return &Pushover{
		app:       pushover.New(token),
		recipient: pushover.NewRecipient(recipient),
	}
}

func (p *Pushover) Enabled() bool {
	return p.app != nil && p.recipient != nil
}

func (p *Pushover) Notify(title, message, url string) error {
	if !p.Enabled() {
		slog.Debug("Pushover is not configured, skipping notification",
			slog.String("title", title),
		)
		return nil
	}
	if runes := []rune(message); len(runes) > maxMessageLength {
		message = string(runes[:maxMessageLength-3]) + "..."
	}
	if message == "" {
		message = title
	}
	msg := pushover.NewMessageWithTitle(message, title)
	msg.URL = url
	_, err := p.app.SendMessage(msg, p.recipient)
	return err
}
