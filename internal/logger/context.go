package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const opKey ctxKey = "op"

// WithOp tags the context with the logical operation driving the call chain,
// e.g. "cart.add" or "catalog.list".
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey, op)
}

func OpFrom(ctx context.Context) string {
	if v := ctx.Value(opKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with the operation name automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	op := OpFrom(ctx)
	if op == "" {
		return L()
	}
	return L().With(zap.String("op", op))
}
