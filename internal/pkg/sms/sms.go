package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tals012/agriculture-hrms-sub002/internal/config"
)

// Sender delivers outbound text messages. Implemented by the gateway client
// and by test fakes.
type Sender interface {
	Send(ctx context.Context, phone string, message string) error
}

type gatewayClient struct {
	baseURL string
	token   string
	sender  string
	http    *http.Client
}

func NewGatewayClient(cfg config.SMSConfig) Sender {
	return &gatewayClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		sender:  cfg.Sender,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *gatewayClient) Send(ctx context.Context, phone string, message string) error {
	if c.baseURL == "" {
		slog.Warn("SMS gateway not configured, dropping message", "phone", phone)
		return nil
	}

	body, err := json.Marshal(sendRequest{
		To:      phone,
		From:    c.sender,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("marshal sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read sms response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("unparseable sms response: %w", err)
	}
	if !parsed.Success {
		return fmt.Errorf("sms gateway rejected message: %s", parsed.Error)
	}

	return nil
}
