package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"go_4_study_scheduler/internal/config"
	"go_4_study_scheduler/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SMTPMailer ---
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(cfg config.SMTPConfig, from string) *SMTPMailer {
	return &SMTPMailer{addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), from: from}
}

// Send は平文のSMTPで送信します。開発用のメールキャッチャー(MailHog等)を想定しています。
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Debug("Attempting to send email via SMTP", "smtp_addr", m.addr, "from", m.from, "to", to)

	c, err := smtp.Dial(m.addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", m.addr)
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
	msg := "From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		strings.ReplaceAll(body, "\n", "\r\n") + "\r\n"
	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write email data", "error", err)
		wc.Close()
		return err
	}
	if err = wc.Close(); err != nil {
		logger.Error("Failed to finish email data", "error", err)
		return err
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return c.Quit()
}

// --- NewMailer ファクトリ関数 ---
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "smtp":
		logger.Info("Initializing SMTP mailer...", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
		return NewSMTPMailer(cfg.SMTP, cfg.Mailer.From)
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}
	}
}
