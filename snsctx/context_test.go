package snsctx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbose(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsVerbose(ctx))
	assert.True(t, IsVerbose(SetVerbose(ctx, true)))
	assert.False(t, IsVerbose(SetVerbose(SetVerbose(ctx, true), false)))
}

func TestDump(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)

	Dump(ctx, "quiet", []byte{0x01})
	assert.Empty(t, out.String())

	Dump(SetVerbose(ctx, true), "i2c write", []byte{0x20, 0x47}, "addr", 0x19)
	assert.Contains(t, out.String(), "i2c write")
	assert.Contains(t, out.String(), "20 47")
	assert.Contains(t, out.String(), "addr=25")
}

func TestLoggerDefault(t *testing.T) {
	assert.Same(t, slog.Default(), Logger(context.Background()))
}
