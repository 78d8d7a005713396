package smsgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider интерфейс SMS провайдера
type Provider interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// HTTPProvider провайдер, отправляющий SMS через HTTP API
type HTTPProvider struct {
	name       string
	url        string
	apiKey     string
	sender     string
	httpClient *http.Client
}

// NewHTTPProvider создает провайдера с HTTP API
func NewHTTPProvider(name, url, apiKey, sender string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		name:   name,
		url:    url,
		apiKey: apiKey,
		sender: sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name возвращает имя провайдера (для логов и метрик)
func (p *HTTPProvider) Name() string {
	return p.name
}

// Send отправляет сообщение через API провайдера
func (p *HTTPProvider) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendRequest{
		Phone:  msg.Phone,
		Text:   msg.Text,
		Sender: p.sender,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: marshal request: %v", ErrSendFailed, p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s: create request: %v", ErrSendFailed, p.name, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: execute request: %v", ErrSendFailed, p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s: status %d: %s", ErrSendFailed, p.name, resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrSendFailed, p.name, err)
	}
	if !result.OK {
		return fmt.Errorf("%w: %s: provider rejected message: %s", ErrSendFailed, p.name, result.Message)
	}

	return nil
}
