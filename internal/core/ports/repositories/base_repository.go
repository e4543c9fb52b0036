package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTransaction runs fn in a transaction carried by the ctx passed to fn.
	// Repository calls made with that ctx join the transaction. A non-nil error
	// from fn rolls everything back.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
