package clients

import "errors"

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrCPFTaken          = errors.New("cpf already registered")
	ErrClientHasChildren = errors.New("client has linked processes")
)
