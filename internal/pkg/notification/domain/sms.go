package notification

import (
	"errors"
	"strings"
	"time"
)

// SMS is one outbound text campaign: a title, a body and the list of receiver
// phone numbers it was addressed to.
type SMS struct {
	ID        string    `db:"id"`
	Title     string    `db:"intitule"`
	Content   string    `db:"contenu"`
	Receivers []string  `db:"receivers"`
	Date      time.Time `db:"date"`
}

// NewSMS validates and normalizes an SMS record ready to persist.
func NewSMS(title, content string, receivers []string) (SMS, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if content == "" {
		return SMS{}, errors.New("notification: sms content is required")
	}
	if len(receivers) == 0 {
		return SMS{}, errors.New("notification: at least one receiver is required")
	}
	if title == "" {
		title = "notification"
	}
	return SMS{
		Title:     title,
		Content:   content,
		Receivers: receivers,
		Date:      time.Now().UTC(),
	}, nil
}
