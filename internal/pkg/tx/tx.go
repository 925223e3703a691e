package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type key string

const keyTx = key("tx")

// With stores an open transaction in the context so nested repository calls
// run on it instead of the pool.
func With(ctx context.Context, t *sqlx.Tx) context.Context {
	return context.WithValue(ctx, keyTx, t)
}

func From(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(keyTx).(*sqlx.Tx)
	return t, ok
}
