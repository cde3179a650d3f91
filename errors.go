package zeppelin

import "github.com/zeppelin-db/zeppelin-go/internal/api"

// Sentinel errors re-exported from the wire layer.
// Use errors.Is() to check.
var (
	ErrValidation = api.ErrValidation
	ErrNotFound   = api.ErrNotFound
	ErrConflict   = api.ErrConflict
	ErrServer     = api.ErrServer
)

// Error is the typed error returned for any non-success API response.
// Use errors.As() to recover the server message and status code.
type Error = api.Error
