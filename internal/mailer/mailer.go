package mailer

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"luxcert-backend/internal/config"
	"luxcert-backend/internal/models"
)

// MaxBodySize bounds the size of a notification payload. Enforced before the
// message is handed to the transport.
const MaxBodySize = 500000

// Dialer is the transport behind the mailer. gomail's Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer         Dialer
	from           string
	allowedDomains []string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:         gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:           cfg.MailFrom,
		allowedDomains: cfg.MailAllowedDomains,
	}
}

// NewWithDialer builds a mailer over a custom transport.
func NewWithDialer(dialer Dialer, from string, allowedDomains []string) *Mailer {
	return &Mailer{
		dialer:         dialer,
		from:           from,
		allowedDomains: allowedDomains,
	}
}

// Send validates the message and dispatches it, returning the generated
// message id. Rejected messages never reach the transport.
func (m *Mailer) Send(to, subject, html string) (string, error) {
	if err := m.validate(to, subject, html); err != nil {
		return "", err
	}

	messageID := uuid.New().String()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@luxcert>", messageID))
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return messageID, nil
}

func (m *Mailer) validate(to, subject, html string) error {
	addr, err := mail.ParseAddress(to)
	if err != nil || addr.Address != to {
		return fmt.Errorf("%w: invalid recipient address", models.ErrInvalidInput)
	}

	at := strings.LastIndex(to, "@")
	if at <= 0 || at == len(to)-1 {
		return fmt.Errorf("%w: invalid recipient address", models.ErrInvalidInput)
	}

	if len(m.allowedDomains) > 0 {
		domain := strings.ToLower(to[at+1:])
		allowed := false
		for _, d := range m.allowedDomains {
			if domain == d {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: recipient domain not allowed", models.ErrInvalidInput)
		}
	}

	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("%w: subject must not be empty", models.ErrInvalidInput)
	}
	if html == "" {
		return fmt.Errorf("%w: body must not be empty", models.ErrInvalidInput)
	}
	if len(html) > MaxBodySize {
		return fmt.Errorf("%w: body exceeds %d characters", models.ErrInvalidInput, MaxBodySize)
	}

	return nil
}
