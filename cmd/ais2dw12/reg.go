package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/cmd/ais2dw12/console"
)

const maxBurst = 32

var regCmd = cli.Command{
	Name:  "reg",
	Usage: "raw register access",
	Subcommands: cli.Commands{
		&regReadCmd,
		&regWriteCmd,
	},
}

var regReadCmd = cli.Command{
	Name:      "read",
	Usage:     "read N consecutive registers",
	ArgsUsage: "ADDR [N]",
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			return console.Exit(1, "expected 1 or 2 arguments, got %d", c.NArg())
		}
		reg, err := parseByte(c.Args().Get(0))
		if err != nil {
			return console.Fail("invalid register", err)
		}
		n := 1
		if c.NArg() == 2 {
			n, err = strconv.Atoi(c.Args().Get(1))
			if err != nil || n < 1 || n > maxBurst {
				return console.Exit(1, "register count must be between 1 and %d", maxBurst)
			}
		}
		buf := make([]byte, n)
		if err := dev.ReadRegisters(ctx, ais2dw12.Register(reg), buf); err != nil {
			return console.Fail("read failed", err)
		}
		for _, line := range formatRegisters(reg, buf) {
			console.Print(line)
		}
		return nil
	}),
}

var regWriteCmd = cli.Command{
	Name:      "write",
	Usage:     "write hex bytes starting at a register",
	ArgsUsage: "ADDR HEX",
	Action: withDevice(func(ctx context.Context, c *cli.Context, dev *ais2dw12.Dev) error {
		if c.NArg() != 2 {
			return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
		}
		reg, err := parseByte(c.Args().Get(0))
		if err != nil {
			return console.Fail("invalid register", err)
		}
		data, err := parseHex(c.Args().Get(1))
		if err != nil {
			return console.Fail("invalid data", err)
		}
		if err := dev.WriteRegisters(ctx, ais2dw12.Register(reg), data); err != nil {
			return console.Fail("write failed", err)
		}
		console.Infof("wrote % X to %s", data, ais2dw12.Register(reg))
		return nil
	}),
}

// parseHex decodes "01FF", "0x01ff" or "01 ff" into bytes.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil, fmt.Errorf("no data")
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(data) > maxBurst {
		return nil, fmt.Errorf("at most %d bytes can be written at once", maxBurst)
	}
	return data, nil
}

func formatRegisters(start byte, buf []byte) []string {
	lines := make([]string, len(buf))
	for i, b := range buf {
		reg := ais2dw12.Register(int(start) + i)
		lines[i] = fmt.Sprintf("0x%02X %-20s 0x%02X %08b", byte(reg), reg, b, b)
	}
	return lines
}
