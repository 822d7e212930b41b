// Package tinygo binds the driver to TinyGo bus interfaces so the same
// register layer runs on microcontrollers.
package tinygo

import (
	"context"
	"fmt"

	"tinygo.org/x/drivers"

	"github.com/mklimuk/ais2dw12"
)

// readBit is set on the register address of SPI read transfers.
const readBit = 0x80

var (
	_ ais2dw12.Transport = (*I2C)(nil)
	_ ais2dw12.Transport = (*SPI)(nil)
)

// I2C is a register transport on a drivers.I2C bus.
type I2C struct {
	bus  drivers.I2C
	addr uint16
}

func NewI2C(bus drivers.I2C, addr byte) *I2C {
	return &I2C{bus: bus, addr: uint16(addr)}
}

func (d *I2C) ReadRegister(_ context.Context, reg byte, buf []byte) error {
	err := d.bus.Tx(d.addr, []byte{reg}, buf)
	if err != nil {
		return fmt.Errorf("could not read register 0x%02X: %w", reg, err)
	}
	return nil
}

func (d *I2C) WriteRegister(_ context.Context, reg byte, buf []byte) error {
	w := make([]byte, len(buf)+1)
	w[0] = reg
	copy(w[1:], buf)
	err := d.bus.Tx(d.addr, w, nil)
	if err != nil {
		return fmt.Errorf("could not write register 0x%02X: %w", reg, err)
	}
	return nil
}

// SPI is a register transport on a drivers.SPI bus. Chip select is driven by
// the caller through the cs function, which may be nil when the hardware
// handles it.
type SPI struct {
	bus drivers.SPI
	cs  func(selected bool)
}

func NewSPI(bus drivers.SPI, cs func(selected bool)) *SPI {
	return &SPI{bus: bus, cs: cs}
}

func (d *SPI) tx(w, r []byte) error {
	if d.cs != nil {
		d.cs(true)
		defer d.cs(false)
	}
	return d.bus.Tx(w, r)
}

func (d *SPI) ReadRegister(_ context.Context, reg byte, buf []byte) error {
	w := make([]byte, len(buf)+1)
	r := make([]byte, len(buf)+1)
	w[0] = reg | readBit
	err := d.tx(w, r)
	if err != nil {
		return fmt.Errorf("could not read register 0x%02X: %w", reg, err)
	}
	copy(buf, r[1:])
	return nil
}

func (d *SPI) WriteRegister(_ context.Context, reg byte, buf []byte) error {
	w := make([]byte, len(buf)+1)
	w[0] = reg &^ readBit
	copy(w[1:], buf)
	err := d.tx(w, nil)
	if err != nil {
		return fmt.Errorf("could not write register 0x%02X: %w", reg, err)
	}
	return nil
}
