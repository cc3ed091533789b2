package service

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrOrderCreation      = errors.New("failed to create order")
	ErrOrderItemsCreation = errors.New("failed to create order items")
)

// ValidationError lists every offending address field so the client can fix
// all of them in one pass.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// PaymentDeclinedError carries the gateway's message for a charge that the
// processor refused. The order row is retained as a failed record.
type PaymentDeclinedError struct {
	Message string
}

func (e *PaymentDeclinedError) Error() string {
	if e.Message == "" {
		return "payment failed"
	}
	return e.Message
}
