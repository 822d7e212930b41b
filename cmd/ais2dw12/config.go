package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
	"github.com/mklimuk/ais2dw12/profile"
)

var configCmd = cli.Command{
	Name:  "config",
	Usage: "read or write a YAML configuration profile",
	Subcommands: cli.Commands{
		&configDumpCmd,
		&configApplyCmd,
		&configNamesCmd,
	},
}

var configDumpCmd = cli.Command{
	Name:  "dump",
	Usage: "print the device configuration as a profile",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "write to a file instead of stdout"},
	},
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		p, err := profile.Read(ctx, dev)
		if err != nil {
			return console.Fail("could not read configuration", err)
		}
		path := c.String("file")
		if path == "" {
			return p.Encode(console.Writer())
		}
		f, err := os.Create(path)
		if err != nil {
			return console.Fail("could not create profile file", err)
		}
		defer func() { _ = f.Close() }()
		if err := p.Encode(f); err != nil {
			return console.Fail("could not write profile", err)
		}
		console.Infof("profile written to %s", console.White(path))
		return nil
	}),
}

var configApplyCmd = cli.Command{
	Name:  "apply",
	Usage: "write a profile to the device",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "profile path", Required: true},
	},
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		p, err := profile.Load(c.String("file"))
		if err != nil {
			return console.Fail("invalid profile", err)
		}
		if err := p.Apply(ctx, dev); err != nil {
			return console.Fail("could not apply profile", err)
		}
		console.Infof("profile %s applied", console.White(c.String("file")))
		return nil
	}),
}

var configNamesCmd = cli.Command{
	Name:  "names",
	Usage: "list the accepted names of every enumerated setting",
	Action: func(c *cli.Context) error {
		return printYAML(ais2dw12.Names())
	},
}
