package tinygo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/sim"
)

// simI2C routes drivers.I2C transactions to the register simulator.
type simI2C struct {
	dev   *sim.Device
	addrs []uint16
	err   error
}

func (s *simI2C) Tx(addr uint16, w, r []byte) error {
	s.addrs = append(s.addrs, addr)
	if s.err != nil {
		return s.err
	}
	ctx := context.Background()
	if len(r) > 0 {
		return s.dev.ReadRegister(ctx, w[0], r)
	}
	return s.dev.WriteRegister(ctx, w[0], w[1:])
}

// simSPI routes full duplex frames to the register simulator.
type simSPI struct {
	dev *sim.Device
}

func (s *simSPI) Tx(w, r []byte) error {
	ctx := context.Background()
	if w[0]&readBit != 0 {
		return s.dev.ReadRegister(ctx, w[0]&^readBit, r[1:])
	}
	return s.dev.WriteRegister(ctx, w[0], w[1:])
}

func (s *simSPI) Transfer(b byte) (byte, error) {
	return 0, errors.New("single byte transfers are not used")
}

func TestI2C(t *testing.T) {
	ctx := context.Background()
	bus := &simI2C{dev: sim.New()}
	dev := ais2dw12.New(NewI2C(bus, ais2dw12.AddrSA0Low))

	require.NoError(t, dev.Probe(ctx))
	require.NoError(t, dev.SetWakeUpThreshold(ctx, 0x2A))
	ths, err := dev.GetWakeUpThreshold(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), ths)
	for _, a := range bus.addrs {
		assert.Equal(t, uint16(0x18), a)
	}
}

func TestI2CError(t *testing.T) {
	boom := errors.New("nack")
	tr := NewI2C(&simI2C{err: boom}, ais2dw12.AddrSA0High)
	err := tr.WriteRegister(context.Background(), 0x20, []byte{0x01})
	assert.ErrorIs(t, err, boom)
}

func TestSPI(t *testing.T) {
	ctx := context.Background()
	s := sim.New()
	var selects []bool
	dev := ais2dw12.New(NewSPI(&simSPI{dev: s}, func(sel bool) {
		selects = append(selects, sel)
	}))

	require.NoError(t, dev.SetUserOffsetY(ctx, -5))
	assert.Equal(t, byte(0xFB), s.Register(byte(ais2dw12.RegYOfsUsr)))
	id, err := dev.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, byte(ais2dw12.DeviceID), id)
	assert.Equal(t, []bool{true, false, true, false}, selects)
}
