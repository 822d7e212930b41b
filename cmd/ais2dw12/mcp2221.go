package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12/adapter"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
)

var mcp2221Cmd = cli.Command{
	Name:  "mcp2221",
	Usage: "USB bridge maintenance",
	Subcommands: cli.Commands{
		&mcp2221StatusCmd,
		&mcp2221ReleaseCmd,
		&mcp2221GPIOCmd,
	},
}

func bridge(c *cli.Context) *adapter.MCP2221 {
	return adapter.NewMCP2221(adapter.WithIndex(c.Int("index")))
}

var mcp2221StatusCmd = cli.Command{
	Name: "status",
	Action: func(c *cli.Context) error {
		ctx, cancel := commandContext(c)
		defer cancel()
		status, err := bridge(c).Status(ctx)
		if err != nil {
			return console.Fail("adapter communication error", err)
		}
		return printYAML(status)
	},
}

var mcp2221ReleaseCmd = cli.Command{
	Name:  "release",
	Usage: "cancel the pending I2C transfer",
	Action: func(c *cli.Context) error {
		ctx, cancel := commandContext(c)
		defer cancel()
		status, err := bridge(c).ReleaseBus(ctx)
		if err != nil {
			return console.Fail("adapter communication error", err)
		}
		return printYAML(status)
	},
}

var mcp2221GPIOCmd = cli.Command{
	Name:  "gpio",
	Usage: "read the GP pins, e.g. the sensor interrupt lines",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "input", Usage: "configure GPn as a GPIO input before reading", Value: -1},
	},
	Action: func(c *cli.Context) error {
		ctx, cancel := commandContext(c)
		defer cancel()
		mcp := bridge(c)
		if pin := c.Int("input"); pin >= 0 {
			if pin > 3 {
				return console.Exit(1, "pin must be between 0 and 3, got %d", pin)
			}
			cfg, err := mcp.GetGPIOConfig(ctx)
			if err != nil {
				return console.Fail("could not read pin configuration", err)
			}
			cfg[pin] = adapter.PinConfig{Mode: adapter.GPIOModeIn, Designation: adapter.GPIOOperation}
			if err := mcp.SetGPIOConfig(ctx, cfg); err != nil {
				return console.Fail("could not configure pin", err)
			}
		}
		pins, err := mcp.ReadGPIO(ctx)
		if err != nil {
			return console.Fail("could not read pins", err)
		}
		return printYAML(map[string]adapter.Pins{"gpio": pins})
	},
}
