package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const brevoURL = "https://api.brevo.com/v3/smtp/email"

type BrevoConfig struct {
	APIKey        string
	SenderEmail   string
	SenderName    string
	OperatorEmail string
}

type BrevoService struct {
	cfg    BrevoConfig
	url    string
	client *http.Client
	logger *zap.Logger
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// New returns a Brevo-backed notifier, or Nop when any setting is missing.
func New(cfg BrevoConfig, logger *zap.Logger) Notifier {
	if cfg.APIKey == "" || cfg.SenderEmail == "" || cfg.SenderName == "" || cfg.OperatorEmail == "" {
		logger.Warn("Email service not configured, notifications disabled")
		return Nop{}
	}
	logger.Info("Email service initialized",
		zap.String("sender", cfg.SenderEmail),
		zap.String("operator", cfg.OperatorEmail))
	return newBrevoService(cfg, brevoURL, logger)
}

func newBrevoService(cfg BrevoConfig, url string, logger *zap.Logger) *BrevoService {
	return &BrevoService{
		cfg:    cfg,
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (s *BrevoService) BookingCreated(ctx context.Context, n BookingNotice) error {
	subject := fmt.Sprintf("Новое бронирование: %s, %s %s", n.TeacherName, n.DayLabel, n.TimeStr)
	body := fmt.Sprintf(
		"<h1>Новое бронирование #%d</h1><p>Преподаватель: %s</p><p>Когда: %s, %s</p><p>Клиент: %s, %s</p>",
		n.BookingID,
		html.EscapeString(n.TeacherName),
		html.EscapeString(n.DayLabel),
		html.EscapeString(n.TimeStr),
		html.EscapeString(n.Name),
		html.EscapeString(n.Phone),
	)
	return s.send(ctx, subject, body)
}

func (s *BrevoService) RequestCreated(ctx context.Context, n RequestNotice) error {
	subject := fmt.Sprintf("Заявка на подбор: %s", n.GoalLabel)
	body := fmt.Sprintf(
		"<h1>Заявка на подбор #%d</h1><p>Цель: %s</p><p>Время: %s</p><p>Клиент: %s, %s</p>",
		n.RequestID,
		html.EscapeString(n.GoalLabel),
		html.EscapeString(n.TimeForStudy),
		html.EscapeString(n.Name),
		html.EscapeString(n.Phone),
	)
	return s.send(ctx, subject, body)
}

func (s *BrevoService) Digest(ctx context.Context, d DigestNotice) error {
	subject := fmt.Sprintf("Сводка: %d бронирований, %d заявок", d.Bookings, d.Requests)
	body := fmt.Sprintf(
		"<h1>Сводка</h1><p>С %s по %s</p><p>Бронирований: %d</p><p>Заявок на подбор: %d</p>",
		d.Since.Format(time.RFC3339),
		d.Until.Format(time.RFC3339),
		d.Bookings,
		d.Requests,
	)
	return s.send(ctx, subject, body)
}

func (s *BrevoService) send(ctx context.Context, subject, htmlContent string) error {
	to := s.cfg.OperatorEmail
	if !strings.Contains(to, "@") {
		return fmt.Errorf("invalid recipient email: %s", to)
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.cfg.SenderName, "email": s.cfg.SenderEmail},
		To:          []map[string]string{{"email": to, "name": to[:strings.Index(to, "@")]}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.cfg.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("brevo status %d: %s", resp.StatusCode, string(respBody))
	}

	s.logger.Debug("Email sent", zap.String("subject", subject))
	return nil
}
