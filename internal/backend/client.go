// Package backend is the REST client of the bakery backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/config"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/pkg/breaker"
	"github.com/TemirB/bakeflow-admin/internal/pkg/retry"
)

// ErrUnavailable wraps transport failures and an open circuit.
var ErrUnavailable = errors.New("backend: unavailable")

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Client struct {
	baseURL     string
	client      *http.Client
	breaker     brk
	retryPolicy config.Retry
	logger      *zap.Logger
}

func New(cfg config.Backend, brk brk, retryPolicy config.Retry, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend: base url is required")
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		client:      &http.Client{Timeout: cfg.Timeout},
		breaker:     brk,
		retryPolicy: retryPolicy,
		logger:      logger,
	}, nil
}

// envelope covers every response shape the backend uses, including {error, details}.
type envelope struct {
	Orders   []domain.Order   `json:"orders"`
	Products []domain.Product `json:"products"`
	domain.StatusUpdateResult
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var env envelope
	err := retry.Do(ctx, c.retryPolicy, func() error {
		env = envelope{}
		return retryable(c.do(ctx, http.MethodGet, "/api/admin/orders", nil, &env))
	})
	if err != nil {
		return nil, err
	}
	if env.Orders == nil {
		env.Orders = []domain.Order{}
	}
	return env.Orders, nil
}

// UpdateOrderStatus returns the backend verdict even on failure so callers can
// surface notification_error.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.StatusUpdateResult, error) {
	var env envelope
	path := "/api/admin/orders/" + strconv.FormatInt(id, 10) + "/status"
	err := c.do(ctx, http.MethodPut, path, map[string]string{"status": string(status)}, &env)

	var be *domain.BackendError
	switch {
	case errors.As(err, &be):
		return env.StatusUpdateResult, fmt.Errorf("%w: %w", domain.ErrStatusUpdate, err)
	case err != nil:
		return domain.StatusUpdateResult{}, err
	case !env.Success:
		return env.StatusUpdateResult, fmt.Errorf("%w: %s", domain.ErrStatusUpdate, env.NotificationError)
	}
	return env.StatusUpdateResult, nil
}

func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	path := "/api/products"
	if q := filter.Query().Encode(); q != "" {
		path += "?" + q
	}
	var env envelope
	err := retry.Do(ctx, c.retryPolicy, func() error {
		env = envelope{}
		return retryable(c.do(ctx, http.MethodGet, path, nil, &env))
	})
	if err != nil {
		return nil, err
	}
	if env.Products == nil {
		env.Products = []domain.Product{}
	}
	return env.Products, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	var env envelope
	if err := c.do(ctx, http.MethodDelete, "/api/products/"+strconv.FormatInt(id, 10), nil, &env); err != nil {
		return err
	}
	return confirmed(env, "archive", id)
}

func (c *Client) UpdateProductStatus(ctx context.Context, id int64, status domain.ProductStatus) error {
	var env envelope
	path := "/api/products/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"status": string(status)}, &env); err != nil {
		return err
	}
	return confirmed(env, "status", id)
}

// confirmed treats a 2xx answer without success:true as a refused mutation.
func confirmed(env envelope, op string, id int64) error {
	if env.Success {
		return nil
	}
	return fmt.Errorf("%w: %s product %d", domain.ErrProductUpdate, op, id)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, target *envelope) error {
	if err := c.breaker.Allow(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.breaker.Failure()
		c.logger.Debug("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.breaker.Failure()
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if resp.StatusCode >= 500 {
		c.breaker.Failure()
	} else {
		c.breaker.Success()
	}

	var decodeErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, target)
	}
	if resp.StatusCode >= 300 || target.Error != "" {
		be := &domain.BackendError{StatusCode: resp.StatusCode, Err: target.Error, Details: target.Details}
		if decodeErr != nil || (be.Err == "" && be.Details == "") {
			be.Err = fmt.Sprintf("remote error %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
		}
		return be
	}
	if decodeErr != nil {
		return fmt.Errorf("backend: decode response: %w", decodeErr)
	}
	return nil
}

// retryable lets transient failures through to retry.Do and stops on the rest.
func retryable(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, breaker.ErrOpenState) {
		return retry.Stop(err)
	}
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	var be *domain.BackendError
	if errors.As(err, &be) && be.StatusCode >= 500 {
		return err
	}
	return retry.Stop(err)
}
