package payments

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrClientNotFound  = errors.New("client not found")
)
