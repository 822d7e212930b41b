package ais2dw12

import (
	"context"
	"errors"
	"fmt"
)

var ErrBusBusy = errors.New("I2C engine is busy (command not completed)")

var ErrInvalidInterval = errors.New("ais2dw12: polling interval must be positive")

// ErrNoTransport is returned when an operation is invoked without a usable
// transport. The bus is not touched in that case.
var ErrNoTransport = errors.New("ais2dw12: no transport bound to device")

// Transport moves register bytes between the host and the device. The length
// of buf is the transaction length; multi-byte transfers address consecutive
// registers starting at reg.
type Transport interface {
	ReadRegister(ctx context.Context, reg byte, buf []byte) error
	WriteRegister(ctx context.Context, reg byte, buf []byte) error
}

// TransportFuncs adapts a pair of plain functions to Transport. A nil function
// makes the corresponding call fail with ErrNoTransport.
type TransportFuncs struct {
	Read  func(ctx context.Context, reg byte, buf []byte) error
	Write func(ctx context.Context, reg byte, buf []byte) error
}

func (f TransportFuncs) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	if f.Read == nil {
		return ErrNoTransport
	}
	return f.Read(ctx, reg, buf)
}

func (f TransportFuncs) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	if f.Write == nil {
		return ErrNoTransport
	}
	return f.Write(ctx, reg, buf)
}

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is a raw I2C master: every call is one bus transaction addressed to
// a 7-bit slave address.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}

var _ Transport = &I2CTransport{}

// I2CTransport turns an addressable I2C bus into a register Transport. A read
// writes the register pointer then reads the requested number of bytes.
type I2CTransport struct {
	bus        I2CBus
	address    byte
	retryLimit int
}

type I2CTransportOpt func(t *I2CTransport)

// WithRetryLimit sets how many times a transaction is attempted when the bus
// reports ErrBusBusy. The bus is released between attempts.
func WithRetryLimit(limit int) I2CTransportOpt {
	return func(t *I2CTransport) {
		if limit > 0 {
			t.retryLimit = limit
		}
	}
}

func NewI2CTransport(bus I2CBus, address byte, opts ...I2CTransportOpt) *I2CTransport {
	t := &I2CTransport{
		bus:        bus,
		address:    address,
		retryLimit: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *I2CTransport) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	return t.retry(ctx, func() error {
		err := t.bus.WriteToAddr(ctx, t.address, []byte{reg})
		if err != nil {
			return err
		}
		return t.bus.ReadFromAddr(ctx, t.address, buf)
	})
}

func (t *I2CTransport) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	frame := make([]byte, len(buf)+1)
	frame[0] = reg
	copy(frame[1:], buf)
	return t.retry(ctx, func() error {
		return t.bus.WriteToAddr(ctx, t.address, frame)
	})
}

func (t *I2CTransport) retry(ctx context.Context, tx func() error) error {
	var err error
	for attempt := 0; attempt < t.retryLimit; attempt++ {
		err = tx()
		if !errors.Is(err, ErrBusBusy) {
			return err
		}
		if attempt+1 < t.retryLimit {
			if rerr := t.bus.Release(ctx); rerr != nil {
				return fmt.Errorf("could not release bus after busy error: %w", rerr)
			}
		}
	}
	return err
}
