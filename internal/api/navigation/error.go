package navigation

import "PaperPath/pkg/response"

var (
	ErrInvalidSessionID    = response.NewError(400, "invalid session id")
	ErrSessionStoreFailure = response.NewError(500, "failed to access navigation state")
)
