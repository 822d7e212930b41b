package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/adapter"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
	"github.com/mklimuk/ais2dw12/gobot"
	"github.com/mklimuk/ais2dw12/i2c"
	"github.com/mklimuk/ais2dw12/sim"
	"github.com/mklimuk/ais2dw12/spi"
)

const (
	adapterSim       = "sim"
	adapterMCP2221   = "mcp2221"
	adapterPeriph    = "periph"
	adapterPeriphSPI = "periph-spi"
	adapterGobot     = "gobot"
	adapterGobotSPI  = "gobot-spi"
)

var adapters = []string{adapterSim, adapterMCP2221, adapterPeriph, adapterPeriphSPI, adapterGobot, adapterGobotSPI}

func adapterNames() string {
	return strings.Join(adapters, ", ")
}

// simulated is the register file behind the sim adapter: one sample of
// roughly 1g on Z and 25.5°C.
func simulated() *sim.Device {
	return sim.New(
		sim.WithRegister(byte(ais2dw12.RegOutTL), 0x80),
		sim.WithRegister(byte(ais2dw12.RegOutTH), 0x00),
		sim.WithRegister(byte(ais2dw12.RegOutZL), 0x00),
		sim.WithRegister(byte(ais2dw12.RegOutZH), 0x40),
	)
}

// parseByte accepts decimal, 0x-prefixed hex or 0b-prefixed binary.
func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q: %w", s, err)
	}
	return byte(v), nil
}

type closer func() error

// openDevice builds the transport selected by the global flags. The returned
// closer releases the bus and is never nil.
func openDevice(c *cli.Context) (*ais2dw12.Dev, closer, error) {
	noop := func() error { return nil }
	addr, err := parseByte(c.String("addr"))
	if err != nil {
		return nil, noop, err
	}
	name := c.String("adapter")
	slog.Debug("opening device", "adapter", name, "addr", fmt.Sprintf("%#x", addr))
	switch name {
	case adapterSim:
		return ais2dw12.New(simulated()), noop, nil
	case adapterMCP2221:
		bridge := adapter.NewMCP2221(adapter.WithIndex(c.Int("index")))
		tr := ais2dw12.NewI2CTransport(bridge, addr, ais2dw12.WithRetryLimit(c.Int("retries")))
		return ais2dw12.New(tr), noop, nil
	case adapterPeriph:
		bus, err := i2c.Open(c.String("device"))
		if err != nil {
			return nil, noop, err
		}
		return ais2dw12.New(bus.Device(addr)), bus.Close, nil
	case adapterPeriphSPI:
		port, err := spi.Open(c.String("device"), 0)
		if err != nil {
			return nil, noop, err
		}
		return ais2dw12.New(port), port.Close, nil
	case adapterGobot:
		npi := nanopi.NewNeoAdaptor()
		if err := npi.I2cBusAdaptor.Connect(); err != nil {
			return nil, noop, fmt.Errorf("adaptor connect error: %w", err)
		}
		tr := gobot.NewI2C(npi, addr, c.Int("bus"))
		if err := tr.Start(); err != nil {
			_ = npi.I2cBusAdaptor.Finalize()
			return nil, noop, err
		}
		return ais2dw12.New(tr), func() error {
			return errors.Join(tr.Halt(), npi.I2cBusAdaptor.Finalize())
		}, nil
	case adapterGobotSPI:
		npi := nanopi.NewNeoAdaptor()
		if err := npi.SpiBusAdaptor.Connect(); err != nil {
			return nil, noop, fmt.Errorf("adaptor connect error: %w", err)
		}
		tr := gobot.NewSPI(npi)
		if err := tr.Start(); err != nil {
			_ = npi.SpiBusAdaptor.Finalize()
			return nil, noop, err
		}
		return ais2dw12.New(tr), func() error {
			return errors.Join(tr.Halt(), npi.SpiBusAdaptor.Finalize())
		}, nil
	}
	return nil, noop, fmt.Errorf("unknown adapter %q, expected one of: %s", name, adapterNames())
}

func closeDevice(fn closer) {
	if err := fn(); err != nil {
		slog.Warn("could not close device", "err", err)
	}
}

type deviceAction func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error

// withDevice opens the selected device around a command action.
func withDevice(fn deviceAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx, cancel := commandContext(c)
		defer cancel()
		dev, done, err := openDevice(c)
		if err != nil {
			return console.Fail("could not open device", err)
		}
		defer closeDevice(done)
		return fn(ctx, c, dev)
	}
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(console.Writer())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return console.Fail("encoding error", err)
	}
	return enc.Close()
}
