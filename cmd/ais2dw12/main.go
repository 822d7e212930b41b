package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	chlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
	"github.com/mklimuk/ais2dw12/snsctx"
)

var version string
var commit string
var date string

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	err := newApp().Run(args)
	if err != nil {
		console.Errorf("%v", err)
		var exerr cli.ExitCoder
		if errors.As(err, &exerr) {
			return exerr.ExitCode()
		}
		return 1
	}
	return 0
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ais2dw12"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s-%s-%s", version, date, commit)
	app.Usage = "AIS2DW12 accelerometer cli"
	// exit codes are mapped by run
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging and bus traffic dumps",
		},
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Usage:   "bus adapter: " + adapterNames(),
			Value:   adapterMCP2221,
		},
		&cli.StringFlag{
			Name:  "device",
			Usage: "I2C bus or SPI port name for periph adapters",
		},
		&cli.StringFlag{
			Name:  "addr",
			Usage: "I2C slave address",
			Value: "0x19",
		},
		&cli.IntFlag{
			Name:  "bus",
			Usage: "I2C bus number for the gobot adapter (-1 keeps the board default)",
			Value: -1,
		},
		&cli.IntFlag{
			Name:  "index",
			Usage: "MCP2221 index when several are connected (-1 requires exactly one)",
			Value: -1,
		},
		&cli.IntFlag{
			Name:  "retries",
			Usage: "I2C attempts when the adapter reports a busy bus",
			Value: 3,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "overall command timeout",
			Value: 30 * time.Second,
		},
	}
	app.Before = func(c *cli.Context) error {
		charm := chlog.NewWithOptions(os.Stderr, chlog.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
		})
		charm.SetColorProfile(termenv.TrueColor)
		charm.SetLevel(chlog.InfoLevel)
		if c.Bool("verbose") {
			charm.SetLevel(chlog.DebugLevel)
		}
		slog.SetDefault(slog.New(charm))
		return nil
	}
	app.Commands = cli.Commands{
		&idCmd,
		&readCmd,
		&statusCmd,
		&configCmd,
		&motionCmd,
		&resetCmd,
		&regCmd,
		&usbCmd,
		&mcp2221Cmd,
	}
	return app
}

// commandContext carries the verbose flag and logger to the bus bindings and
// bounds the command with --timeout.
func commandContext(c *cli.Context) (context.Context, context.CancelFunc) {
	ctx := snsctx.SetVerbose(c.Context, c.Bool("verbose"))
	ctx = snsctx.WithLogger(ctx, slog.Default())
	return context.WithTimeout(ctx, c.Duration("timeout"))
}
