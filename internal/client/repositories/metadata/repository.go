// Package metadata is a small durable key/value store for client-local
// preferences, such as the nickname prefilled into the comment dialog.
package metadata

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("metadata key not found")

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
