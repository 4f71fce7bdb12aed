// Package notify delivers notification mails through an SMTP relay.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
)

// SMTPNotifier sends plain-text mails through an unauthenticated relay,
// usually the MTA of the Galaxy host.
type SMTPNotifier struct {
	cfg    config.SMTP
	logger *logger.Logger

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a new SMTPNotifier.
func NewSMTPNotifier(cfg config.SMTP, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: log, sendMail: smtp.SendMail}
}

// Notify sends subject and body to the single recipient to.
func (n *SMTPNotifier) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.sendMail(n.cfg.Address, nil, n.cfg.Sender, []string{to}, message(n.cfg.Sender, to, subject, body)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	n.logger.Debug().Msgf("Email sent to %s", to)
	return nil
}

// message formats an RFC 822 message with CRLF line endings.
func message(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))
	return []byte(b.String())
}
