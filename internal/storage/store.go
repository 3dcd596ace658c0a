// Package storage abstracts where the collection document lives. The
// service only ever needs whole-object download and overwrite.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Download when the object does not exist.
// Callers normalize it to an empty document rather than failing.
var ErrNotFound = errors.New("storage: object not found")

type ObjectStore interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Upload(ctx context.Context, bucket, key string, data []byte) error
}
