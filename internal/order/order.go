// Package order validates user trade and cash intents and packages them
// into backend-ready requests. No network calls happen here, a rejected
// intent never leaves the process.
package order

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

type ValidationCode string

const (
	InvalidQuantity   ValidationCode = "INVALID_QUANTITY"
	InvalidLimitPrice ValidationCode = "INVALID_LIMIT_PRICE"
	InvalidAmount     ValidationCode = "INVALID_AMOUNT"
)

// ValidationError is a local, user-correctable rejection. It blocks
// submission before any request is made.
type ValidationError struct {
	Code   ValidationCode
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// parsePositive accepts only finite numbers greater than zero.
func parsePositive(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// Estimate computes the live cost estimate shown next to the trade form.
// It returns 0 for a non-positive or unparsable quantity so the UI can show
// a blank estimate instead of an error. A blank or unparsable limit price
// falls back to the current market price, matching the form's placeholder
// behavior.
func Estimate(intent model.OrderIntent, currentPrice float64) float64 {
	quantity, ok := parsePositive(intent.Quantity)
	if !ok {
		return 0
	}

	effective := currentPrice
	if intent.Type == model.Limit {
		if limit, err := strconv.ParseFloat(intent.LimitPrice, 64); err == nil && limit != 0 && !math.IsNaN(limit) {
			effective = limit
		}
	}

	return quantity * effective
}

// ValidateAndBuild turns a trade intent into an OrderRequest, resolving the
// effective price: the current market price for MARKET orders, the user's
// limit price for LIMIT orders. Rules run in order and the first failure
// wins.
func ValidateAndBuild(intent model.OrderIntent, userID string, currentPrice float64) (model.OrderRequest, error) {
	quantity, ok := parsePositive(intent.Quantity)
	if !ok {
		return model.OrderRequest{}, &ValidationError{
			Code:   InvalidQuantity,
			Field:  "quantity",
			Reason: "quantity must be a positive number",
		}
	}

	price := currentPrice
	if intent.Type == model.Limit {
		limit, ok := parsePositive(intent.LimitPrice)
		if !ok {
			return model.OrderRequest{}, &ValidationError{
				Code:   InvalidLimitPrice,
				Field:  "limitPrice",
				Reason: "limit price must be a positive number",
			}
		}
		price = limit
	}

	return model.OrderRequest{
		UserID:   userID,
		Symbol:   intent.Symbol,
		Side:     intent.Side,
		Quantity: quantity,
		Price:    price,
		Type:     intent.Type,
	}, nil
}

// BuildCashRequest validates a deposit or withdrawal amount entered as
// form text.
func BuildCashRequest(amountText string) (model.CashRequest, error) {
	amount, ok := parsePositive(amountText)
	if !ok {
		return model.CashRequest{}, &ValidationError{
			Code:   InvalidAmount,
			Field:  "amount",
			Reason: "amount must be a positive number",
		}
	}
	return model.CashRequest{Amount: amount}, nil
}
