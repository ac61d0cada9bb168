// Package mailer sends the operator notification for new contact messages.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/wneessen/go-mail"
)

// Notifier announces a stored contact message to the site operator.
type Notifier interface {
	NotifyContact(ctx context.Context, msg *model.ContactMessage) error
}

// NopNotifier is used when SMTP is not configured.
type NopNotifier struct{}

func (NopNotifier) NotifyContact(context.Context, *model.ContactMessage) error { return nil }

// Sender delivers composed messages. *mail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPConfig holds the transport account and the operator mailbox.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
	Timeout  time.Duration
}

// SMTPNotifier renders the submission as HTML and sends it over SMTP.
type SMTPNotifier struct {
	sender Sender
	from   string
	to     string
	log    zerolog.Logger
}

// NewSMTPNotifier dials nothing until the first notification.
func NewSMTPNotifier(cfg SMTPConfig, log zerolog.Logger) (*SMTPNotifier, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return NewNotifierWithSender(client, cfg.Username, cfg.To, log), nil
}

// NewNotifierWithSender builds a notifier around an existing transport.
func NewNotifierWithSender(sender Sender, from, to string, log zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		sender: sender,
		from:   from,
		to:     to,
		log:    log.With().Str("component", "mailer").Logger(),
	}
}

func (n *SMTPNotifier) NotifyContact(ctx context.Context, msg *model.ContactMessage) error {
	m, err := n.compose(msg)
	if err != nil {
		return err
	}
	if err := n.sender.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.log.Debug().Str("message_id", msg.ID).Msg("Notification sent")
	return nil
}

func (n *SMTPNotifier) compose(msg *model.ContactMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(n.from); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := m.To(n.to); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	// The submitted address is not validated, so a bad one only costs the Reply-To.
	if err := m.ReplyTo(msg.Email); err != nil {
		n.log.Debug().Err(err).Msg("Skipping Reply-To")
	}
	m.Subject(Subject(msg))

	body, err := RenderBody(msg)
	if err != nil {
		return nil, err
	}
	m.SetBodyString(mail.TypeTextHTML, body)
	return m, nil
}

// Subject is the notification subject line.
func Subject(msg *model.ContactMessage) string {
	return fmt.Sprintf("New Contact Form Submission from %s", msg.Name)
}

var bodyTmpl = template.Must(template.New("contact").Parse(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Service:</strong> {{.Service}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

// RenderBody renders the submitted fields as simple escaped HTML.
func RenderBody(msg *model.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}
	return buf.String(), nil
}
