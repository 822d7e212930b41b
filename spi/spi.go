// Package spi binds the driver to Linux SPI ports through periph.io.
package spi

import (
	"context"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/snsctx"
)

// readBit is set on the register address for read transfers.
const readBit = 0x80

// DefaultSpeed is well below the 10MHz maximum of the device.
const DefaultSpeed = 5 * physic.MegaHertz

var _ ais2dw12.Transport = &Dev{}

// Dev is a register transport over a 4-wire SPI connection (mode 3, 8 bits).
type Dev struct {
	conn   spi.Conn
	closer spi.PortCloser
}

// Open initialises the host drivers and connects to the named SPI port.
func Open(name string, speed physic.Frequency) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open spi port %q: %w", name, err)
	}
	d, err := New(p, speed)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	d.closer = p
	return d, nil
}

// New connects to an already opened port.
func New(p spi.Port, speed physic.Frequency) (*Dev, error) {
	if speed == 0 {
		speed = DefaultSpeed
	}
	conn, err := p.Connect(speed, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("could not connect to spi port: %w", err)
	}
	return &Dev{conn: conn}, nil
}

func (d *Dev) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	w := make([]byte, len(buf)+1)
	r := make([]byte, len(buf)+1)
	w[0] = reg | readBit
	err := d.conn.Tx(w, r)
	if err != nil {
		return fmt.Errorf("could not read register 0x%02X: %w", reg, err)
	}
	copy(buf, r[1:])
	snsctx.Dump(ctx, "spi register read", buf, "reg", reg)
	return nil
}

func (d *Dev) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	w := make([]byte, len(buf)+1)
	w[0] = reg &^ readBit
	copy(w[1:], buf)
	snsctx.Dump(ctx, "spi register write", w)
	err := d.conn.Tx(w, nil)
	if err != nil {
		return fmt.Errorf("could not write register 0x%02X: %w", reg, err)
	}
	return nil
}

func (d *Dev) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}
