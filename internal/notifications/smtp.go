package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/municipal_approval_app/internal/core/ports/services"
	"github.com/SscSPs/municipal_approval_app/internal/middleware"
)

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers HTML email through an SMTP relay.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

var _ portssvc.Notifier = (*SMTPSender)(nil)

// NewSMTPSender creates a sender for cfg.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

// SendHTMLEmail sends one message addressed to every recipient.
func (s *SMTPSender) SendHTMLEmail(ctx context.Context, recipients []string, subject, htmlBody string) portssvc.NotificationResult {
	if len(recipients) == 0 {
		return portssvc.NotificationResult{Err: errors.New("no recipients")}
	}
	for _, r := range append([]string{s.cfg.From}, recipients...) {
		if err := checkAddress(r); err != nil {
			return portssvc.NotificationResult{Err: err}
		}
	}
	if err := ctx.Err(); err != nil {
		return portssvc.NotificationResult{Err: err}
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if err := s.sendMail(addr, auth, s.cfg.From, recipients, buildMessage(s.cfg.From, recipients, subject, htmlBody)); err != nil {
		return portssvc.NotificationResult{Err: fmt.Errorf("smtp send to %s failed: %w", addr, err)}
	}
	return portssvc.NotificationResult{Delivered: true}
}

// checkAddress accepts a bare addr-spec only; header values are written verbatim.
func checkAddress(addr string) error {
	if strings.ContainsAny(addr, "\r\n") {
		return fmt.Errorf("invalid email address: %q", addr)
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return fmt.Errorf("invalid email address: %q", addr)
	}
	return nil
}

func buildMessage(from string, to []string, subject, htmlBody string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return b.Bytes()
}

// LogSender stands in for SMTP when no relay is configured; it logs and reports delivery.
type LogSender struct{}

var _ portssvc.Notifier = LogSender{}

func (LogSender) SendHTMLEmail(ctx context.Context, recipients []string, subject, htmlBody string) portssvc.NotificationResult {
	middleware.GetLoggerFromCtx(ctx).Info("Email not sent, SMTP is not configured",
		slog.Any("recipients", recipients),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(htmlBody)))
	return portssvc.NotificationResult{Delivered: true}
}
