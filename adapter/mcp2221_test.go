package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/sim"
)

// bridge emulates the HID side of an MCP2221 with a sensor on its I2C bus.
type bridge struct {
	sensor  *sim.Device
	addr    byte
	busy    bool
	pointer byte
	pending []byte
	resp    [reportSize]byte
	gpio    [8]byte
	opens   int
	closes  int
}

func (b *bridge) open(int) (hidDevice, error) {
	b.opens++
	return b, nil
}

func (b *bridge) Write(req []byte) (int, error) {
	ctx := context.Background()
	b.resp = [reportSize]byte{}
	b.resp[0] = req[0]
	switch req[0] {
	case cmdI2CWrite:
		if b.busy {
			b.resp[1] = 0x01
			break
		}
		n := int(req[1])
		if req[3]>>1 != b.addr || n == 0 {
			break
		}
		b.pointer = req[4]
		if n > 1 {
			if err := b.sensor.WriteRegister(ctx, b.pointer, req[5:4+n]); err != nil {
				return 0, err
			}
		}
	case cmdI2CRead:
		b.pending = make([]byte, int(req[1]))
		if err := b.sensor.ReadRegister(ctx, b.pointer, b.pending); err != nil {
			return 0, err
		}
	case cmdI2CGetData:
		b.resp[3] = byte(len(b.pending))
		copy(b.resp[4:], b.pending)
	case cmdStatus:
		if req[2] == cmdCancelTransfer {
			b.busy = false
		}
		b.resp[13] = 3
		b.resp[16] = b.addr << 1
	case cmdGetGPIO:
		copy(b.resp[2:], b.gpio[:])
	default:
		b.resp[1] = 0x01
	}
	return len(req), nil
}

func (b *bridge) Read(resp []byte) (int, error) {
	return copy(resp, b.resp[:]), nil
}

func (b *bridge) Close() error {
	b.closes++
	return nil
}

func newBridge() (*bridge, *MCP2221) {
	b := &bridge{sensor: sim.New(), addr: ais2dw12.AddrSA0High}
	return b, NewMCP2221(withOpener(b.open), WithResponseWait(0))
}

func TestRegisterAccessThroughBridge(t *testing.T) {
	ctx := context.Background()
	b, mcp := newBridge()
	b.sensor.SetRegister(byte(ais2dw12.RegOutXL), 0x10)
	b.sensor.SetRegister(byte(ais2dw12.RegOutXH), 0x02)
	dev := ais2dw12.New(ais2dw12.NewI2CTransport(mcp, ais2dw12.AddrSA0High))

	require.NoError(t, dev.Probe(ctx))
	require.NoError(t, dev.SetFullScale(ctx, ais2dw12.FullScale4g))
	assert.Equal(t, byte(0x10), b.sensor.Register(byte(ais2dw12.RegCtrl6)))
	raw, err := dev.GetAccelerationRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, int16(0x0210), raw[0])
	assert.Equal(t, b.opens, b.closes)
}

func TestBusyBridgeIsReleased(t *testing.T) {
	ctx := context.Background()
	b, mcp := newBridge()
	b.busy = true

	err := mcp.WriteToAddr(ctx, b.addr, []byte{0x0F})
	assert.ErrorIs(t, err, ais2dw12.ErrBusBusy)

	tr := ais2dw12.NewI2CTransport(mcp, b.addr, ais2dw12.WithRetryLimit(2))
	id := make([]byte, 1)
	require.NoError(t, tr.ReadRegister(ctx, 0x0F, id))
	assert.Equal(t, ais2dw12.DeviceID, id[0])
	assert.False(t, b.busy)
}

func TestTransferLimit(t *testing.T) {
	_, mcp := newBridge()
	err := mcp.ReadFromAddr(context.Background(), 0x19, make([]byte, maxTransfer+1))
	assert.ErrorContains(t, err, "exceeds")
}

func TestOpenFailure(t *testing.T) {
	mcp := NewMCP2221(withOpener(func(int) (hidDevice, error) {
		return nil, ErrNotFound
	}), WithResponseWait(0))
	_, err := mcp.Status(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatus(t *testing.T) {
	_, mcp := newBridge()
	st, err := mcp.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.I2CDataBufferCounter)
	assert.Equal(t, "3200", st.CurrentAddress)
}

func TestBufferToStatus(t *testing.T) {
	buf := make([]byte, reportSize)
	buf[9], buf[10] = 0x06, 0x01
	buf[11] = 0x04
	buf[13] = 2
	buf[14] = 0x76
	buf[15] = 0x0A
	buf[16], buf[17] = 0x32, 0x00
	buf[25] = 1
	assert.Equal(t, &Status{
		I2CDataBufferCounter:   2,
		I2CSpeedDivider:        0x76,
		I2CTimeout:             10,
		CurrentAddress:         "3200",
		LastWriteRequestedSize: 0x0106,
		LastWriteSentSize:      4,
		ReadPending:            1,
	}, bufferToStatus(buf))
}

func TestReadGPIO(t *testing.T) {
	b, mcp := newBridge()
	b.gpio = [8]byte{1, 0, 0, 1, 0xEE, 0xEE, 1, 1}
	pins, err := mcp.ReadGPIO(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Pins{
		{Mode: GPIOModeOut, Value: 1},
		{Mode: GPIOModeIn, Value: 0},
		{Mode: GPIOModeNoOperation, Value: 0xEE},
		{Mode: GPIOModeIn, Value: 1},
	}, pins)
}

func TestUnsupportedCommand(t *testing.T) {
	_, mcp := newBridge()
	_, err := mcp.GetGPIOConfig(context.Background())
	assert.True(t, errors.Is(err, ErrCommandUnsupported))
}
