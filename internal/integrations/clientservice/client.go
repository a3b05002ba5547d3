package clientservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ClientService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ClientService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClient получает профиль клиента
func (c *Client) GetClient(ctx context.Context, clientID int64) (*ClientProfile, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid client ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrClientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile ClientProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetClientWithGracefulDegradation как GetClient, но недоступность сервиса
// превращается в ErrServiceDegraded. ErrClientNotFound пробрасывается как есть
func (c *Client) GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*ClientProfile, error) {
	profile, err := c.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			c.log.Info("Client not found: client_id=%d", clientID)
			return nil, err
		}

		c.log.Error("ClientService unavailable, applying graceful degradation for client_id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: client_id=%d, error=%v", ErrServiceDegraded, clientID, err)
	}

	return profile, nil
}
