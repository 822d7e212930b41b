// Package ais2dw12 is a register-access driver for the ST AIS2DW12 three-axis
// MEMS accelerometer.
//
// The driver translates a typed configuration API into reads and writes of the
// device register map. It owns no bus: the caller binds a Transport (I2C, SPI,
// USB bridge or the in-memory simulator) and every operation goes through it
// synchronously. Nothing is cached; each getter reads the device.
//
//	dev := ais2dw12.New(ais2dw12.NewI2CTransport(bus, ais2dw12.AddrSA0High))
//	if err := dev.Probe(ctx); err != nil {
//		return err
//	}
//	err := dev.SetFullScale(ctx, ais2dw12.FullScale4g)
//
// Transport errors are returned as they are, without wrapping, so callers can
// compare them directly.
package ais2dw12

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// AddrSA0Low is the I2C address with the SA0 pin tied low.
	AddrSA0Low byte = 0x18
	// AddrSA0High is the I2C address with the SA0 pin tied high.
	AddrSA0High byte = 0x19

	// DeviceID is the WHO_AM_I content.
	DeviceID byte = 0x44
)

var ErrWrongDevice = errors.New("unexpected device id")

// Dev is an AIS2DW12 bound to a transport. It holds no other state and does
// no locking; concurrent use must be serialised by the caller.
type Dev struct {
	transport Transport
}

func New(transport Transport) *Dev {
	return &Dev{transport: transport}
}

func (d *Dev) readReg(ctx context.Context, reg Register, buf []byte) error {
	if d == nil || d.transport == nil {
		return ErrNoTransport
	}
	return d.transport.ReadRegister(ctx, byte(reg), buf)
}

func (d *Dev) writeReg(ctx context.Context, reg Register, buf []byte) error {
	if d == nil || d.transport == nil {
		return ErrNoTransport
	}
	return d.transport.WriteRegister(ctx, byte(reg), buf)
}

func (d *Dev) readByte(ctx context.Context, reg Register) (byte, error) {
	var buf [1]byte
	err := d.readReg(ctx, reg, buf[:])
	return buf[0], err
}

func (d *Dev) writeByte(ctx context.Context, reg Register, val byte) error {
	return d.writeReg(ctx, reg, []byte{val})
}

// update reads reg, applies fn and writes the result back. Nothing is written
// when the read fails.
func (d *Dev) update(ctx context.Context, reg Register, fn func(b byte) byte) error {
	b, err := d.readByte(ctx, reg)
	if err != nil {
		return err
	}
	return d.writeByte(ctx, reg, fn(b))
}

// ReadRegisters reads len(buf) consecutive registers starting at reg.
func (d *Dev) ReadRegisters(ctx context.Context, reg Register, buf []byte) error {
	return d.readReg(ctx, reg, buf)
}

// WriteRegisters writes buf to consecutive registers starting at reg.
func (d *Dev) WriteRegisters(ctx context.Context, reg Register, buf []byte) error {
	return d.writeReg(ctx, reg, buf)
}

// Probe checks that the bound device answers with the AIS2DW12 identifier.
func (d *Dev) Probe(ctx context.Context) error {
	id, err := d.GetDeviceID(ctx)
	if err != nil {
		return err
	}
	if id != DeviceID {
		return fmt.Errorf("%w: got 0x%02X, expected 0x%02X", ErrWrongDevice, id, DeviceID)
	}
	return nil
}

// ResetAndWait triggers a software reset and polls the reset bit until the
// device clears it or ctx is done. The poll interval must be positive.
func (d *Dev) ResetAndWait(ctx context.Context, poll time.Duration) error {
	if poll <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, poll)
	}
	err := d.SetReset(ctx, true)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		pending, err := d.GetReset(ctx)
		if err != nil {
			return err
		}
		if !pending {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
