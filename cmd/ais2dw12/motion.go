package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
)

var motionCmd = cli.Command{
	Name:  "motion",
	Usage: "wake-up detection latched on INT1",
	Subcommands: cli.Commands{
		&motionInitCmd,
		&motionCheckCmd,
		&motionResetCmd,
	},
}

var motionInitCmd = cli.Command{
	Name:  "init",
	Usage: "route wake-up events to INT1 with a latched notification",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "rate", Usage: "output data rate", Value: ais2dw12.DataRate100Hz.String()},
		&cli.UintFlag{Name: "threshold", Usage: "wake-up threshold, 1 LSb = FS/64", Value: 2},
		&cli.UintFlag{Name: "duration", Usage: "wake-up duration, 1 LSb = 1/ODR", Value: 0},
	},
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		var rate ais2dw12.DataRate
		if err := rate.UnmarshalText([]byte(c.String("rate"))); err != nil {
			return console.Fail("invalid rate", err)
		}
		steps := []struct {
			name string
			run  func() error
		}{
			{"power down", func() error { return dev.SetDataRate(ctx, ais2dw12.DataRateOff) }},
			{"notification", func() error { return dev.SetIntNotification(ctx, ais2dw12.IntLatched) }},
			{"threshold", func() error { return dev.SetWakeUpThreshold(ctx, uint8(c.Uint("threshold"))) }},
			{"duration", func() error { return dev.SetWakeUpDuration(ctx, uint8(c.Uint("duration"))) }},
			{"int1 routing", func() error { return dev.SetInt1Route(ctx, ais2dw12.Int1Route{WakeUp: true}) }},
			{"data rate", func() error { return dev.SetDataRate(ctx, rate) }},
		}
		for _, s := range steps {
			if err := s.run(); err != nil {
				return console.Fail("could not set "+s.name, err)
			}
		}
		console.Infof("motion detection enabled at %s", console.White(rate))
		return nil
	}),
}

var motionCheckCmd = cli.Command{
	Name:  "check",
	Usage: "report the wake-up source without clearing the latch",
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		wu, err := dev.GetWakeUpSource(ctx)
		if err != nil {
			return console.Fail("could not read wake-up source", err)
		}
		console.PInfof(console.PictoMotion, "motion interrupt: %s (x: %s y: %s z: %s)",
			console.Flag(wu.WakeUp), console.Flag(wu.X), console.Flag(wu.Y), console.Flag(wu.Z))
		return nil
	}),
}

var motionResetCmd = cli.Command{
	Name:  "reset",
	Usage: "clear the latched interrupt by reading all event sources",
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		src, err := dev.GetAllSources(ctx)
		if err != nil {
			return console.Fail("could not read event sources", err)
		}
		wu := src.WakeUpSource
		console.PInfof(console.PictoMotion, "cleared wake-up: %s (x: %s y: %s z: %s)",
			console.Flag(wu.WakeUp), console.Flag(wu.X), console.Flag(wu.Y), console.Flag(wu.Z))
		return nil
	}),
}
