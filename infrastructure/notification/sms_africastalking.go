package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"austino-shop/domain/ports"
	"austino-shop/pkg/config"
	"austino-shop/pkg/logger"
)

// AfricasTalkingSMS - Africa's Talking implementation of SMSSenderPort
// ยิง REST API ตรง ๆ (form-encoded ตาม docs ของ provider)
type AfricasTalkingSMS struct {
	cfg        config.SMSConfig
	httpClient *http.Client
}

func NewAfricasTalkingSMS(cfg config.SMSConfig) ports.SMSSenderPort {
	return &AfricasTalkingSMS{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsConfigured ตรวจสอบว่ามี credentials ครบ
func (s *AfricasTalkingSMS) IsConfigured() bool {
	return s.cfg.Username != "" && s.cfg.APIKey != ""
}

func (s *AfricasTalkingSMS) SendSMS(ctx context.Context, phoneNumber, message string) ports.DispatchResult {
	if !s.IsConfigured() {
		logger.InfoContext(ctx, "SMS provider not configured, skipping")
		return ports.DispatchResult{OK: false, Status: "Skipped"}
	}

	form := url.Values{}
	form.Set("username", s.cfg.Username)
	form.Set("to", phoneNumber)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ports.DispatchResult{OK: false, Status: "Failed-" + err.Error()}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to send SMS", "error", err)
		return ports.DispatchResult{OK: false, Status: "Failed-" + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.ErrorContext(ctx, "SMS API error", "status", resp.StatusCode, "body", string(body))
		return ports.DispatchResult{
			OK:     false,
			Status: fmt.Sprintf("Failed-sms api returned status %d", resp.StatusCode),
		}
	}

	logger.InfoContext(ctx, "SMS sent successfully", "to", phoneNumber)
	return ports.DispatchResult{OK: true, Status: "Success"}
}

// Verify interface implementation
var _ ports.SMSSenderPort = (*AfricasTalkingSMS)(nil)
