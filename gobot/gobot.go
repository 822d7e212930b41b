// Package gobot binds the driver to Gobot I2C and SPI adaptors, for boards
// such as the NanoPi where Gobot owns the buses.
//
//	adaptor := nanopi.NewNeoAdaptor()
//	tr := gobot.NewI2C(adaptor, ais2dw12.AddrSA0High, 0)
//	if err := tr.Start(); err != nil { log.Fatal(err) }
//	defer tr.Halt()
//	dev := ais2dw12.New(tr)
package gobot

import (
	"context"
	"errors"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/i2c"
	"gobot.io/x/gobot/v2/drivers/spi"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/snsctx"
)

const driverName = "ais2dw12"

// readBit is set on the register address of SPI read transfers.
const readBit = 0x80

var ErrNotStarted = errors.New("gobot driver not started")

var (
	_ ais2dw12.Transport = &I2C{}
	_ ais2dw12.Transport = &SPI{}
)

// blockIO is the subset of the Gobot generic I2C driver used for register
// access.
type blockIO interface {
	ReadBlockData(reg uint8, data []byte) error
	WriteBlockData(reg uint8, data []byte) error
}

// I2C is a register transport on a Gobot I2C connector.
type I2C struct {
	driver *i2c.GenericDriver
	io     blockIO
}

// NewI2C creates the transport. A negative bus keeps the adaptor default.
func NewI2C(c i2c.Connector, address byte, bus int) *I2C {
	opts := []func(i2c.Config){}
	if bus >= 0 {
		opts = append(opts, func(cfg i2c.Config) {
			cfg.SetBus(bus)
		})
	}
	d := i2c.NewGenericDriver(c, driverName, int(address), opts...)
	return &I2C{driver: d}
}

func (t *I2C) Start() error {
	err := t.driver.Start()
	if err != nil {
		return fmt.Errorf("could not start i2c driver: %w", err)
	}
	t.io = t.driver
	return nil
}

func (t *I2C) Halt() error {
	t.io = nil
	return t.driver.Halt()
}

func (t *I2C) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	if t.io == nil {
		return ErrNotStarted
	}
	err := t.io.ReadBlockData(reg, buf)
	if err != nil {
		return fmt.Errorf("could not read register 0x%02X: %w", reg, err)
	}
	snsctx.Dump(ctx, "gobot i2c read", buf, "reg", reg)
	return nil
}

func (t *I2C) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	if t.io == nil {
		return ErrNotStarted
	}
	snsctx.Dump(ctx, "gobot i2c write", buf, "reg", reg)
	err := t.io.WriteBlockData(reg, buf)
	if err != nil {
		return fmt.Errorf("could not write register 0x%02X: %w", reg, err)
	}
	return nil
}

// spiOps is the subset of the Gobot SPI connection used for register access.
type spiOps interface {
	ReadCommandData(command []byte, data []byte) error
	WriteBytes(data []byte) error
}

// SPI is a register transport on a Gobot SPI connector. The device runs in
// SPI mode 3.
type SPI struct {
	driver *spi.Driver
	ops    spiOps
}

func NewSPI(c spi.Connector, opts ...func(spi.Config)) *SPI {
	d := spi.NewDriver(c, driverName, opts...)
	d.SetMode(3)
	if d.GetSpeedOrDefault(0) == 0 {
		d.SetSpeed(5_000_000)
	}
	return &SPI{driver: d}
}

func (t *SPI) Start() error {
	err := t.driver.Start()
	if err != nil {
		return fmt.Errorf("could not start spi driver: %w", err)
	}
	ops, ok := t.driver.Connection().(spiOps)
	if !ok {
		return fmt.Errorf("spi connection does not support required operations")
	}
	t.ops = ops
	return nil
}

func (t *SPI) Halt() error {
	t.ops = nil
	return t.driver.Halt()
}

func (t *SPI) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	if t.ops == nil {
		return ErrNotStarted
	}
	err := t.ops.ReadCommandData([]byte{reg | readBit}, buf)
	if err != nil {
		return fmt.Errorf("could not read register 0x%02X: %w", reg, err)
	}
	snsctx.Dump(ctx, "gobot spi read", buf, "reg", reg)
	return nil
}

func (t *SPI) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	if t.ops == nil {
		return ErrNotStarted
	}
	frame := append([]byte{reg &^ readBit}, buf...)
	snsctx.Dump(ctx, "gobot spi write", frame)
	err := t.ops.WriteBytes(frame)
	if err != nil {
		return fmt.Errorf("could not write register 0x%02X: %w", reg, err)
	}
	return nil
}
