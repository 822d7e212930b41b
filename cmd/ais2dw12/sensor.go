package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
)

var idCmd = cli.Command{
	Name:  "id",
	Usage: "read WHO_AM_I and check the device identity",
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		id, err := dev.GetDeviceID(ctx)
		if err != nil {
			return console.Fail("could not read device id", err)
		}
		if id != ais2dw12.DeviceID {
			console.Printf("WHO_AM_I: %s (expected %#02x)\n", console.Red(fmt.Sprintf("%#02x", id)), ais2dw12.DeviceID)
			return console.Exit(1, "unexpected device")
		}
		console.Printf("WHO_AM_I: %s (AIS2DW12)\n", console.Green(fmt.Sprintf("%#02x", id)))
		return nil
	}),
}

var readCmd = cli.Command{
	Name:  "read",
	Usage: "print acceleration in mg and temperature in °C",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of samples", Value: 1},
		&cli.DurationFlag{Name: "interval", Aliases: []string{"i"}, Usage: "delay between samples", Value: time.Second},
	},
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		count := c.Int("count")
		if count < 1 {
			return console.Exit(1, "count must be positive, got %d", count)
		}
		interval := c.Duration("interval")
		if interval <= 0 {
			return console.Exit(1, "interval must be positive, got %s", interval)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 0; i < count; i++ {
			if i > 0 {
				select {
				case <-ctx.Done():
					return console.Fail("interrupted", ctx.Err())
				case <-ticker.C:
				}
			}
			mg, err := dev.GetAccelerationMg(ctx)
			if err != nil {
				return console.Fail("could not read acceleration", err)
			}
			temp, err := dev.GetTemperatureRaw(ctx)
			if err != nil {
				return console.Fail("could not read temperature", err)
			}
			console.PInfof(console.PictoMotion, "x: %s y: %s z: %s mg",
				console.White(fmt.Sprintf("%8.1f", mg[0])),
				console.White(fmt.Sprintf("%8.1f", mg[1])),
				console.White(fmt.Sprintf("%8.1f", mg[2])))
			console.PInfof(console.PictoThermometer, "temperature: %s°C",
				console.White(fmt.Sprintf("%.2f", ais2dw12.FromLSBToCelsius(temp))))
		}
		return nil
	}),
}

type statusReport struct {
	Status     ais2dw12.Status     `yaml:"status"`
	Sources    ais2dw12.AllSources `yaml:"sources"`
	FIFOLevel  uint8               `yaml:"fifo_level"`
	FIFOFull   bool                `yaml:"fifo_overrun"`
	FIFOThresh bool                `yaml:"fifo_watermark"`
}

var statusCmd = cli.Command{
	Name:  "status",
	Usage: "print the status, event sources and FIFO state",
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		var report statusReport
		var err error
		if report.Status, err = dev.GetStatus(ctx); err != nil {
			return console.Fail("could not read status", err)
		}
		if report.Sources, err = dev.GetAllSources(ctx); err != nil {
			return console.Fail("could not read event sources", err)
		}
		if report.FIFOLevel, err = dev.GetFIFODataLevel(ctx); err != nil {
			return console.Fail("could not read FIFO level", err)
		}
		if report.FIFOFull, err = dev.GetFIFOOverrunFlag(ctx); err != nil {
			return console.Fail("could not read FIFO overrun flag", err)
		}
		if report.FIFOThresh, err = dev.GetFIFOWatermarkFlag(ctx); err != nil {
			return console.Fail("could not read FIFO watermark flag", err)
		}
		return printYAML(report)
	}),
}

var resetCmd = cli.Command{
	Name:  "reset",
	Usage: "soft reset the device and wait for completion",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
		&cli.DurationFlag{Name: "poll", Usage: "reset bit polling interval", Value: 5 * time.Millisecond},
	},
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		if !c.Bool("yes") {
			ok, err := console.Confirm("reset all registers to their defaults?")
			if err != nil {
				return console.Fail("prompt error", err)
			}
			if !ok {
				console.PInfof(console.PictoStop, "reset cancelled")
				return nil
			}
		}
		if err := dev.ResetAndWait(ctx, c.Duration("poll")); err != nil {
			return console.Fail("reset failed", err)
		}
		console.Infof("device reset")
		return nil
	}),
}
