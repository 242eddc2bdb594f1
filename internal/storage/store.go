// Package storage persists the domain tables as whole JSON documents.
package storage

import (
	"context"
	"errors"
)

// Document keys. They match the keys the browser client used for its
// local storage, so exported data can be loaded as-is.
const (
	KeySales       = "sales_data"
	KeySalespeople = "staff_data"
	KeyStores      = "stores_data"
)

// ErrNotFound is returned by Load when no document exists under a key.
var ErrNotFound = errors.New("document not found")

// DocumentStore reads and writes opaque document bodies by key. Save
// replaces the whole body.
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, body []byte) error
	Ping(ctx context.Context) error
}
