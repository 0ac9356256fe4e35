// internal/app/system/mailer/mailer.go
package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Mailer sends emails via SMTP. Delivery is best-effort in this application:
// the recovery-code flow issues and returns the code whether or not the
// email goes out, and callers log send failures instead of surfacing them.
type Mailer struct {
	host     string
	port     int
	user     string
	pass     string
	from     string
	fromName string
	log      *zap.Logger
}

// Config holds the configuration for creating a Mailer.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// New creates a new Mailer with the given configuration.
func New(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		pass:     cfg.Pass,
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

// FromName returns the configured sender display name.
func (m *Mailer) FromName() string {
	return m.fromName
}

// Email represents an email to be sent.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Send delivers an email via SMTP.
func (m *Mailer) Send(e Email) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.fromName, m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", e.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", e.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	if e.HTMLBody != "" {
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	}
	msg.WriteString("\r\n")
	if e.HTMLBody != "" {
		msg.WriteString(e.HTMLBody)
	} else {
		msg.WriteString(e.TextBody)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{e.To}, msg.Bytes()); err != nil {
		m.log.Warn("smtp send failed",
			zap.String("to", e.To),
			zap.String("subject", e.Subject),
			zap.Error(err),
		)
		return err
	}

	m.log.Debug("email sent",
		zap.String("to", e.To),
		zap.String("subject", e.Subject),
	)
	return nil
}
