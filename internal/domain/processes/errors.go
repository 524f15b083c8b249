package processes

import "errors"

var (
	ErrProcessNotFound    = errors.New("process not found")
	ErrProcessNumberTaken = errors.New("process number already registered")
	ErrProcessHasHearings = errors.New("process has linked hearings")
	ErrClientNotFound     = errors.New("client not found")
)
