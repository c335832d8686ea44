package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с Payment API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	log        Logger
}

// NewClient создает новый экземпляр клиента Payment API
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// CreateWalletPayment создает кошельковую платежную сессию.
// При неуспехе (транспортная ошибка, не-2xx, success=false) возвращает ErrPaymentInit.
func (c *Client) CreateWalletPayment(ctx context.Context, req *CreateWalletPaymentRequest) (*CreateWalletPaymentResponse, error) {
	url := fmt.Sprintf("%s/api/payment/wallet/create", c.baseURL)

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrPaymentInit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrPaymentInit, resp.StatusCode, string(body))
	}

	var created CreateWalletPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !created.Success {
		return nil, fmt.Errorf("%w: %s", ErrPaymentInit, created.Message)
	}

	return &created, nil
}

// GetBankPaymentStatus запрашивает статус банковского перевода.
func (c *Client) GetBankPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	url := fmt.Sprintf("%s/api/payment/status/%s", c.baseURL, transactionID)
	return c.getStatus(ctx, url)
}

// GetWalletPaymentStatus запрашивает статус кошелькового платежа.
func (c *Client) GetWalletPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	url := fmt.Sprintf("%s/api/payment/wallet/status/%s", c.baseURL, transactionID)
	return c.getStatus(ctx, url)
}

func (c *Client) getStatus(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return status.Status, nil
}
