// Package snsctx carries per-invocation tracing settings through
// context.Context so that bus bindings can dump their traffic on demand.
package snsctx

import (
	"context"
	"encoding/hex"
	"log/slog"
)

type ctxIndex int

const (
	ctxIndexVerbose ctxIndex = iota
	ctxIndexLogger
)

func IsVerbose(ctx context.Context) bool {
	val := ctx.Value(ctxIndexVerbose)
	if val == nil {
		return false
	}
	return val.(bool)
}

func SetVerbose(ctx context.Context, value bool) context.Context {
	return context.WithValue(ctx, ctxIndexVerbose, value)
}

// WithLogger attaches a logger used by Logger and Dump.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxIndexLogger, logger)
}

// Logger returns the context logger or slog.Default.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxIndexLogger).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// Dump logs a hex dump of data at debug level when the context is verbose.
func Dump(ctx context.Context, msg string, data []byte, args ...any) {
	if !IsVerbose(ctx) {
		return
	}
	Logger(ctx).Debug(msg, append(args, "len", len(data), "data", "\n"+hex.Dump(data))...)
}
