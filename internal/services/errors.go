package services

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const QueryTimeout = 30 * time.Second

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBuyerNotFound    = errors.New("buyer not found")
	ErrDuplicateName    = errors.New("buyer name already in use")
	ErrReferenced       = errors.New("still referenced by reviews")
	ErrInvalidReference = errors.New("referenced product or buyer does not exist")
	ErrDatabaseQuery    = errors.New("database query failed")
)

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout)
}

// queryError wraps an unclassified store error so handlers can report it as
// a server failure.
func queryError(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %v", ErrDatabaseQuery, action, err)
}
