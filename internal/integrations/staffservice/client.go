package staffservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с сервисом персонала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса персонала
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaff получает список сотрудников магазина
func (c *Client) GetStaff(ctx context.Context, shopID string) ([]Staff, error) {
	endpoint := fmt.Sprintf("%s/internal/shops/%s/staff", c.baseURL, url.PathEscape(shopID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrShopNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var list StaffListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return list.Staff, nil
}

// CountActiveStaff возвращает число активных сотрудников магазина.
// Любая ошибка, кроме отсутствия магазина, превращается в ErrServiceDegraded
func (c *Client) CountActiveStaff(ctx context.Context, shopID string) (int, error) {
	staff, err := c.GetStaff(ctx, shopID)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			c.log.Warn("CountActiveStaff: shop=%s not found in staff service", shopID)
			return 0, err
		}

		c.log.Error("CountActiveStaff: staff service unavailable, applying graceful degradation for shop=%s: %v", shopID, err)
		return 0, fmt.Errorf("%w: shop=%s, error=%v", ErrServiceDegraded, shopID, err)
	}

	active := 0
	for _, s := range staff {
		if s.IsActive {
			active++
		}
	}

	c.log.Info("CountActiveStaff: shop=%s has %d active staff", shopID, active)
	return active, nil
}
