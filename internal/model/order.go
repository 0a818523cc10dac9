package model

import "time"

type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

type OrderType string

const (
	Market OrderType = "MARKET"
	Limit  OrderType = "LIMIT"
)

type OrderStatus string

const (
	Open      OrderStatus = "OPEN"
	Filled    OrderStatus = "FILLED"
	Rejected  OrderStatus = "REJECTED"
	Cancelled OrderStatus = "CANCELLED"
)

// OrderIntent is unvalidated user input from the trade form. Quantity and
// LimitPrice stay as raw text until validation, mirroring the form fields.
type OrderIntent struct {
	Symbol     Symbol    `json:"symbol"`
	Side       OrderSide `json:"side"`
	Type       OrderType `json:"type"`
	Quantity   string    `json:"quantity"`
	LimitPrice string    `json:"limitPrice"`
}

// OrderRequest is a validated, backend-ready trade instruction. Price is the
// resolved effective price: the current market price for MARKET orders, the
// user's limit price for LIMIT orders.
type OrderRequest struct {
	UserID   string    `json:"userId"`
	Symbol   Symbol    `json:"symbol"`
	Side     OrderSide `json:"side"`
	Quantity float64   `json:"quantity"`
	Price    float64   `json:"price"`
	Type     OrderType `json:"type"`
}

// Order is the backend-owned persisted order. The dashboard never
// transitions Status itself, cancellation is a request to the backend.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Symbol    Symbol      `json:"symbol"`
	Side      OrderSide   `json:"side"`
	Type      OrderType   `json:"type"`
	Quantity  float64     `json:"quantity"`
	Price     float64     `json:"price"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OpResult is the backend's reply to order submission, cancellation and
// cash operations.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CashRequest struct {
	Amount float64 `json:"amount"`
}
