// Package i2c binds the driver to Linux I2C buses through periph.io.
package i2c

import (
	"context"
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/snsctx"
)

var _ ais2dw12.I2CBus = &Bus{}

var _ ais2dw12.Transport = &Device{}

// Bus is an opened periph I2C bus.
type Bus struct {
	bus i2c.Bus
}

type BusOpt func(b *busConfig)

type busConfig struct {
	speed physic.Frequency
}

// WithSpeed sets the bus clock. The AIS2DW12 supports up to 400kHz.
func WithSpeed(speed physic.Frequency) BusOpt {
	return func(c *busConfig) {
		c.speed = speed
	}
}

// Open initialises the host drivers and opens the named bus ("" picks the
// first one, "/dev/i2c-1" or "1" pick a specific one).
func Open(dev string, opts ...BusOpt) (*Bus, error) {
	cfg := busConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	state, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	for _, driver := range state.Loaded {
		slog.Debug("periph driver loaded", "driver", driver.String())
	}
	bus, err := i2creg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("could not open i2c bus: %w", err)
	}
	if cfg.speed > 0 {
		err = bus.SetSpeed(cfg.speed)
		if err != nil {
			_ = bus.Close()
			return nil, fmt.Errorf("could not set i2c bus speed to %s: %w", cfg.speed, err)
		}
	}
	return &Bus{bus: bus}, nil
}

// New wraps an already opened bus, for example an i2ctest.Playback.
func New(bus i2c.Bus) *Bus {
	return &Bus{bus: bus}
}

func (b *Bus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	err := b.bus.Tx(uint16(address), nil, buffer)
	if err != nil {
		return fmt.Errorf("could not read from i2c bus %x: %w", address, err)
	}
	snsctx.Dump(ctx, "i2c read", buffer, "addr", address)
	return nil
}

func (b *Bus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	snsctx.Dump(ctx, "i2c write", buffer, "addr", address)
	err := b.bus.Tx(uint16(address), buffer, nil)
	if err != nil {
		return fmt.Errorf("could not write to i2c bus %x: %w", address, err)
	}
	return nil
}

func (b *Bus) Release(ctx context.Context) error {
	return nil
}

func (b *Bus) Close() error {
	if c, ok := b.bus.(i2c.BusCloser); ok {
		return c.Close()
	}
	return nil
}

// Device returns a register transport for the slave at address. Register
// reads use a combined write/read transaction with a repeated start.
func (b *Bus) Device(address byte) *Device {
	return &Device{dev: &i2c.Dev{Bus: b.bus, Addr: uint16(address)}}
}

// Device is a register transport for one AIS2DW12 on a periph bus.
type Device struct {
	dev *i2c.Dev
}

func (d *Device) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	err := d.dev.Tx([]byte{reg}, buf)
	if err != nil {
		return fmt.Errorf("could not read register 0x%02X from %s: %w", reg, d.dev, err)
	}
	snsctx.Dump(ctx, "i2c register read", buf, "reg", reg)
	return nil
}

func (d *Device) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	frame := append([]byte{reg}, buf...)
	snsctx.Dump(ctx, "i2c register write", frame)
	err := d.dev.Tx(frame, nil)
	if err != nil {
		return fmt.Errorf("could not write register 0x%02X to %s: %w", reg, d.dev, err)
	}
	return nil
}
