package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"austino-shop/domain/ports"
	"austino-shop/pkg/config"
	"austino-shop/pkg/logger"
)

// SMTPEmailSender - SMTP implementation of EmailSenderPort
type SMTPEmailSender struct {
	cfg config.SMTPConfig
}

func NewSMTPEmailSender(cfg config.SMTPConfig) ports.EmailSenderPort {
	return &SMTPEmailSender{cfg: cfg}
}

// IsConfigured ตรวจสอบว่าตั้งค่า SMTP host แล้ว
func (s *SMTPEmailSender) IsConfigured() bool {
	return s.cfg.Host != ""
}

func (s *SMTPEmailSender) SendEmail(ctx context.Context, subject, body string, recipients []string) ports.DispatchResult {
	if !s.IsConfigured() {
		logger.InfoContext(ctx, "SMTP not configured, skipping email")
		return ports.DispatchResult{OK: false, Status: "Skipped"}
	}
	if len(recipients) == 0 {
		return ports.DispatchResult{OK: false, Status: "Failed-no recipients"}
	}

	msg := strings.Builder{}
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, recipients, []byte(msg.String())); err != nil {
		logger.ErrorContext(ctx, "Failed to send email", "error", err, "recipients", len(recipients))
		return ports.DispatchResult{OK: false, Status: "Failed-" + err.Error()}
	}

	logger.InfoContext(ctx, "Email sent successfully", "recipients", len(recipients))
	return ports.DispatchResult{OK: true, Status: "Success"}
}

// Verify interface implementation
var _ ports.EmailSenderPort = (*SMTPEmailSender)(nil)
