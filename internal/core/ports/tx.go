package ports

import "context"

// Transactor runs fn inside a single store transaction. Repositories called
// with the ctx handed to fn take part in that transaction. A nested call
// joins the outer transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
