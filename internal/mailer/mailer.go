// Package mailer delivers out-of-band notifications such as password reset
// tokens. The rest of the application depends on the Mailer interface only.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/Shiven1412/dead-poets/internal/config"
)

// Mailer sends a password reset message carrying the raw reset token.
type Mailer interface {
	SendResetToken(ctx context.Context, toEmail, rawToken string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	addr    string
	from    string
	baseURL string
}

// NewSMTPMailer builds an SMTPMailer from config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		addr:    cfg.SMTPHost + ":" + cfg.SMTPPort,
		from:    cfg.SMTPFrom,
		baseURL: cfg.ResetBaseURL,
	}
}

// SendResetToken emails the reset link. The raw token appears only in the
// message body; the store holds its hash.
func (m *SMTPMailer) SendResetToken(_ context.Context, toEmail, rawToken string) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset\r\n\r\n"+
			"You requested a password reset. Visit %s/%s within one hour to choose a new password.\r\n"+
			"If you did not request this, ignore this message.\r\n",
		m.from, toEmail, m.baseURL, rawToken,
	)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{toEmail}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", toEmail, err)
	}
	return nil
}

// LogMailer logs instead of sending; used in development when SMTP_HOST is unset.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer returns a LogMailer writing to the given logger.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendResetToken logs the delivery. The raw token is intentionally NOT logged;
// only its presence is recorded.
func (m *LogMailer) SendResetToken(ctx context.Context, toEmail, _ string) error {
	m.logger.InfoContext(ctx, "password reset token issued (no SMTP host configured, delivery skipped)",
		slog.String("email", toEmail))
	return nil
}

// ForConfig picks the SMTP mailer when a host is configured, else the log mailer.
func ForConfig(cfg *config.Config, logger *slog.Logger) Mailer {
	if cfg.SMTPHost == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(cfg)
}
