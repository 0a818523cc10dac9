// Package backend talks to the trading backend over its REST surface. The
// backend owns matching, persistence and authoritative order state, this
// client only fetches views and hands off validated requests.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/config"
	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"github.com/Zahkklm/FinRiskDetector/internal/model"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	_pricesURL    = "/api/market/prices"
	_historyURL   = "/api/market/history/{symbol}"
	_portfolioURL = "/api/market/portfolio/{userId}"
	_valueURL     = "/api/market/portfolio/{userId}/value"
	_depositURL   = "/api/market/portfolio/{userId}/deposit"
	_withdrawURL  = "/api/market/portfolio/{userId}/withdraw"
	_ordersURL    = "/api/market/orders/{userId}"
	_orderURL     = "/api/market/order"
	_cancelURL    = "/api/market/order/{userId}/{orderId}"
)

// RemoteError is a backend rejection or transport failure. It is surfaced
// as-is and retried only by the user re-invoking the operation.
type RemoteError struct {
	Op      string
	Status  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend request failed: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: backend request failed: %s: %s", e.Op, e.Status, e.Message)
}

type Client struct {
	c           *resty.Client
	rateLimiter ratelimit.Limiter

	logger logger.Logger
}

func NewClient(cfg config.BackendConfig, logger logger.Logger) *Client {
	client := resty.New().
		SetLogger(logger).
		SetBaseURL(cfg.Address).
		SetTimeout(cfg.RequestTimeout)

	return &Client{
		c:           client,
		rateLimiter: ratelimit.New(cfg.RequestsPerMinute, ratelimit.Per(1*time.Minute)),
		logger:      logger,
	}
}

func (c *Client) Close() error {
	return c.c.Close()
}

func (c *Client) FetchPrices(ctx context.Context) (model.Snapshot, error) {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetResult(&model.Snapshot{}).
		Get(_pricesURL)
	if err != nil {
		return nil, fmt.Errorf("%w: can't fetch prices", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, &RemoteError{Op: "fetch prices", Status: resp.Status(), Message: resp.String()}
	}

	return *resp.Result().(*model.Snapshot), nil
}

func (c *Client) FetchPriceHistory(ctx context.Context, symbol model.Symbol) ([]model.PricePoint, error) {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetResult(&[]model.PricePoint{}).
		Get(_historyURL)
	if err != nil {
		return nil, fmt.Errorf("%w: can't fetch price history", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, &RemoteError{Op: "fetch price history", Status: resp.Status(), Message: resp.String()}
	}

	return *resp.Result().(*[]model.PricePoint), nil
}

func (c *Client) FetchPortfolio(ctx context.Context, userID string) (model.Portfolio, error) {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetPathParam("userId", userID).
		SetResult(&model.Portfolio{}).
		Get(_portfolioURL)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("%w: can't fetch portfolio", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return model.Portfolio{}, &RemoteError{Op: "fetch portfolio", Status: resp.Status(), Message: resp.String()}
	}

	return *resp.Result().(*model.Portfolio), nil
}

func (c *Client) FetchPortfolioValue(ctx context.Context, userID string) (float64, error) {
	c.rateLimiter.Take()

	var value float64
	resp, err := c.c.R().
		SetContext(ctx).
		SetPathParam("userId", userID).
		SetResult(&value).
		Get(_valueURL)
	if err != nil {
		return 0, fmt.Errorf("%w: can't fetch portfolio value", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, &RemoteError{Op: "fetch portfolio value", Status: resp.Status(), Message: resp.String()}
	}

	return value, nil
}

func (c *Client) FetchOrders(ctx context.Context, userID string) ([]model.Order, error) {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetPathParam("userId", userID).
		SetResult(&[]model.Order{}).
		Get(_ordersURL)
	if err != nil {
		return nil, fmt.Errorf("%w: can't fetch orders", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, &RemoteError{Op: "fetch orders", Status: resp.Status(), Message: resp.String()}
	}

	return *resp.Result().(*[]model.Order), nil
}

func (c *Client) SubmitOrder(ctx context.Context, req model.OrderRequest) (model.OpResult, error) {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&model.OpResult{}).
		Post(_orderURL)
	if err != nil {
		return model.OpResult{}, fmt.Errorf("%w: can't submit order", err)
	}
	defer resp.Body.Close()

	c.logger.Debugf("submitted order %s %s %s qty=%f status: %s", req.Side, req.Type, req.Symbol, req.Quantity, resp.Status())

	if resp.IsError() {
		return model.OpResult{}, &RemoteError{Op: "submit order", Status: resp.Status(), Message: resp.String()}
	}

	return *resp.Result().(*model.OpResult), nil
}

func (c *Client) CancelOrder(ctx context.Context, userID, orderID string) (model.OpResult, error) {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"userId":  userID,
			"orderId": orderID,
		}).
		SetResult(&model.OpResult{}).
		Delete(_cancelURL)
	if err != nil {
		return model.OpResult{}, fmt.Errorf("%w: can't cancel order", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return model.OpResult{}, &RemoteError{Op: "cancel order", Status: resp.Status(), Message: resp.String()}
	}

	return *resp.Result().(*model.OpResult), nil
}

func (c *Client) Deposit(ctx context.Context, userID string, req model.CashRequest) error {
	return c.cashOp(ctx, "deposit", _depositURL, userID, req)
}

func (c *Client) Withdraw(ctx context.Context, userID string, req model.CashRequest) error {
	return c.cashOp(ctx, "withdraw", _withdrawURL, userID, req)
}

func (c *Client) cashOp(ctx context.Context, op, url, userID string, req model.CashRequest) error {
	c.rateLimiter.Take()

	resp, err := c.c.R().
		SetContext(ctx).
		SetPathParam("userId", userID).
		SetBody(req).
		Post(url)
	if err != nil {
		return fmt.Errorf("%w: can't %s", err, op)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return &RemoteError{Op: op, Status: resp.Status(), Message: resp.String()}
	}

	return nil
}
