package storage

import "context"

// Store is the profile-scoped key-value persistence medium behind the
// session and cart stores. Consumers define this interface, not the
// SQLite or Redis implementation.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Well-known keys. The layout mirrors what the web client kept in
// localStorage, one entry per concern.
const (
	KeyToken      = "token"
	KeyRole       = "role"
	KeyUsername   = "username"
	KeyCustomerID = "customerId"
	KeyCart       = "cart"
)
