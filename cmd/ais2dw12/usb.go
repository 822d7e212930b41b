package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/karalabe/hid"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12/adapter"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
)

var usbCmd = cli.Command{
	Name:  "usb",
	Usage: "USB HID discovery",
	Subcommands: cli.Commands{
		&usbLsCmd,
		&usbDetectCmd,
	},
}

var usbLsCmd = cli.Command{
	Name:  "ls",
	Usage: "list all HID devices",
	Action: func(c *cli.Context) error {
		w := tabwriter.NewWriter(console.Writer(), 24, 0, 1, ' ', 0)
		_, _ = fmt.Fprintf(w, "PATH\tSERIAL\tVENDOR\tPRODUCT ID\tMANUFACTURER\tPRODUCT\n")
		for _, dev := range hid.Enumerate(0, 0) {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%#x\t%#x\t%s\t%s\n",
				dev.Path, dev.Serial, dev.VendorID, dev.ProductID, dev.Manufacturer, dev.Product)
		}
		return w.Flush()
	},
}

var usbDetectCmd = cli.Command{
	Name:  "detect",
	Usage: "list connected MCP2221 bridges with their --index",
	Action: func(c *cli.Context) error {
		if !hid.Supported() {
			return console.Exit(1, "HID is not supported on this platform")
		}
		devs := adapter.Devices()
		if len(devs) == 0 {
			console.Warnf("no MCP2221 found")
			return nil
		}
		w := tabwriter.NewWriter(console.Writer(), 8, 0, 1, ' ', 0)
		_, _ = fmt.Fprintf(w, "INDEX\tSERIAL\tPATH\n")
		for i, dev := range devs {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", i, dev.Serial, dev.Path)
		}
		return w.Flush()
	},
}
