package gobot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/sim"
)

// simBlock serves SMBus-style block calls from the register simulator.
type simBlock struct {
	dev *sim.Device
	err error
}

func (s *simBlock) ReadBlockData(reg uint8, data []byte) error {
	if s.err != nil {
		return s.err
	}
	return s.dev.ReadRegister(context.Background(), reg, data)
}

func (s *simBlock) WriteBlockData(reg uint8, data []byte) error {
	if s.err != nil {
		return s.err
	}
	return s.dev.WriteRegister(context.Background(), reg, data)
}

func (s *simBlock) ReadCommandData(command []byte, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if len(command) != 1 || command[0]&readBit == 0 {
		return errors.New("not a register read")
	}
	return s.dev.ReadRegister(context.Background(), command[0]&^readBit, data)
}

func (s *simBlock) WriteBytes(data []byte) error {
	if s.err != nil {
		return s.err
	}
	return s.dev.WriteRegister(context.Background(), data[0], data[1:])
}

func TestI2CTransport(t *testing.T) {
	ctx := context.Background()
	s := sim.New()
	dev := ais2dw12.New(&I2C{io: &simBlock{dev: s}})

	require.NoError(t, dev.Probe(ctx))
	require.NoError(t, dev.SetFIFOMode(ctx, ais2dw12.FIFOStream))
	assert.Equal(t, byte(0xC0), s.Register(byte(ais2dw12.RegFIFOCtrl)))
}

func TestSPITransport(t *testing.T) {
	ctx := context.Background()
	s := sim.New()
	dev := ais2dw12.New(&SPI{ops: &simBlock{dev: s}})

	require.NoError(t, dev.Probe(ctx))
	require.NoError(t, dev.SetActivityMode(ctx, ais2dw12.ActivityStationary))
	mode, err := dev.GetActivityMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, ais2dw12.ActivityStationary, mode)
}

func TestNotStarted(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, (&I2C{}).ReadRegister(ctx, 0x0F, make([]byte, 1)), ErrNotStarted)
	assert.ErrorIs(t, (&SPI{}).WriteRegister(ctx, 0x20, []byte{0}), ErrNotStarted)
}

func TestErrorsAreWrapped(t *testing.T) {
	boom := errors.New("ioctl failed")
	tr := &I2C{io: &simBlock{err: boom}}
	err := tr.ReadRegister(context.Background(), 0x0F, make([]byte, 1))
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "0x0F")
}
