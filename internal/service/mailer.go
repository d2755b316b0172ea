// internal/service/mailer.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/newrise0410/piano-academy-app-sub000/internal/config"
	"github.com/newrise0410/piano-academy-app-sub000/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---
// 개발 환경용. 메일을 실제로 보내지 않고 로그로만 남깁니다.
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SmtpMailer ---
type SmtpMailer struct {
	host string
	port int
	from string
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	logger.Debug("Attempting to send email via SMTP",
		"smtp_addr", addr,
		"from", m.from,
		"to", to,
	)

	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return err
	}
	defer c.Close()

	if err = c.Mail(m.from); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.from)
		return err
	}

	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return err
	}
	defer wc.Close()

	msg := "To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write email data", "error", err)
		return err
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// --- NewMailer 팩토리 함수 ---
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Provider {
	case "ses":
		logger.Info("Initializing SES mailer...")
		mailer, err := NewSESMailer(cfg)
		if err != nil {
			logger.Error("Failed to initialize SES mailer, falling back to LogMailer", "error", err)
			return &LogMailer{}
		}
		return mailer
	case "smtp":
		logger.Info("Initializing SMTP mailer...")
		return &SmtpMailer{host: cfg.SMTP.Host, port: cfg.SMTP.Port, from: cfg.SMTP.From}
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer provider, defaulting to LogMailer", "provider", cfg.Mailer.Provider)
		return &LogMailer{}
	}
}
