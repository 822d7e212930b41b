// Package adapter drives the Microchip MCP2221 USB to I2C bridge over HID so
// the sensor can be reached from a workstation.
package adapter

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/karalabe/hid"

	"github.com/mklimuk/ais2dw12"
	"github.com/mklimuk/ais2dw12/snsctx"
)

const VendorID = 0x04D8
const ProductID = 0x00DD

const reportSize = 64

// maxTransfer is the payload of a single HID report.
const maxTransfer = 60

const (
	cmdStatus         = 0x10
	cmdI2CWrite       = 0x90
	cmdI2CRead        = 0x91
	cmdI2CGetData     = 0x40
	cmdGetGPIO        = 0x51
	cmdGetSRAM        = 0x61
	cmdSetSRAM        = 0x60
	cmdCancelTransfer = 0x10
)

var (
	ErrCommandUnsupported = errors.New("unsupported command")
	ErrCommandFailed      = errors.New("command failed")
	ErrNotFound           = errors.New("MCP2221 device not found")
	ErrAmbiguous          = errors.New("more than one MCP2221 connected, select one by index")
)

var _ ais2dw12.I2CBus = &MCP2221{}

// hidDevice is the part of an open HID handle the bridge talks to.
type hidDevice interface {
	Write(b []byte) (int, error)
	Read(b []byte) (int, error)
	Close() error
}

// opener opens the bridge with the given enumeration index; a negative index
// requires exactly one bridge to be present.
type opener func(index int) (hidDevice, error)

type MCP2221 struct {
	mx           sync.Mutex
	open         opener
	index        int
	request      []byte
	response     []byte
	responseWait time.Duration
}

type Option func(*MCP2221)

// WithIndex selects one of several connected bridges.
func WithIndex(index int) Option {
	return func(d *MCP2221) {
		d.index = index
	}
}

func WithResponseWait(wait time.Duration) Option {
	return func(d *MCP2221) {
		d.responseWait = wait
	}
}

func withOpener(open opener) Option {
	return func(d *MCP2221) {
		d.open = open
	}
}

type Status struct {
	I2CDataBufferCounter   int    `yaml:"i2c_data_buffer_counter"`
	I2CSpeedDivider        int    `yaml:"i2c_speed_divider"`
	I2CTimeout             int    `yaml:"i2c_timeout"`
	CurrentAddress         string `yaml:"current_address"`
	LastWriteRequestedSize uint16 `yaml:"last_write_requested_size"`
	LastWriteSentSize      uint16 `yaml:"last_write_sent_size"`
	ReadPending            int    `yaml:"read_pending"`
}

type GPIOMode byte

const (
	GPIOModeOut         GPIOMode = 0b00000000
	GPIOModeIn          GPIOMode = 0b00001000
	GPIOModeNoOperation GPIOMode = 0xEE
)

func (m GPIOMode) String() string {
	switch m {
	case GPIOModeIn:
		return "INPUT"
	case GPIOModeOut:
		return "OUTPUT"
	default:
		return "NOOP"
	}
}

func (m GPIOMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// GPIODesignation selects the pin function. Codes other than GPIOOperation
// mean a different alternate function on every pin.
type GPIODesignation byte

const (
	GPIOOperation GPIODesignation = 0b00000000
	// GP1 alternate function 2; the usual home for the sensor INT1 line.
	GPIO1InterruptDetection GPIODesignation = 0b00000100
)

const gpioModeMask = 0b00001000
const gpioOperationMask = 0b00000111

// Pin is the state of one general purpose pin.
type Pin struct {
	Mode  GPIOMode `yaml:"mode"`
	Value byte     `yaml:"value"`
}

// Pins are GP0 to GP3.
type Pins [4]Pin

type PinConfig struct {
	Mode        GPIOMode        `yaml:"mode"`
	Designation GPIODesignation `yaml:"designation"`
}

type PinConfigs [4]PinConfig

func NewMCP2221(opts ...Option) *MCP2221 {
	d := &MCP2221{
		open:         openHID,
		index:        -1,
		request:      make([]byte, reportSize),
		response:     make([]byte, reportSize),
		responseWait: 50 * time.Millisecond,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Devices lists the bridges attached to the host.
func Devices() []hid.DeviceInfo {
	return hid.Enumerate(VendorID, ProductID)
}

func openHID(index int) (hidDevice, error) {
	devs := Devices()
	switch {
	case len(devs) == 0:
		return nil, ErrNotFound
	case index < 0 && len(devs) > 1:
		return nil, ErrAmbiguous
	case index < 0:
		index = 0
	case index >= len(devs):
		return nil, fmt.Errorf("no device with index %d", index)
	}
	dev, err := devs[index].Open()
	if err != nil {
		return nil, fmt.Errorf("error opening device: %w", err)
	}
	return dev, nil
}

func (d *MCP2221) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	if len(buffer) > maxTransfer {
		return fmt.Errorf("write of %d bytes exceeds %d byte limit", len(buffer), maxTransfer)
	}
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdI2CWrite
	binary.LittleEndian.PutUint16(d.request[1:3], uint16(len(buffer)))
	d.request[3] = address << 1
	copy(d.request[4:], buffer)
	err := d.send(ctx)
	if err != nil {
		return fmt.Errorf("write to 0x%02X failed: %w", address, err)
	}
	if d.response[1] == 0x01 {
		snsctx.Logger(ctx).Debug("adapter busy", "op", "write", "addr", address)
		return ais2dw12.ErrBusBusy
	}
	return nil
}

func (d *MCP2221) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	if len(buffer) > maxTransfer {
		return fmt.Errorf("read of %d bytes exceeds %d byte limit", len(buffer), maxTransfer)
	}
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdI2CRead
	binary.LittleEndian.PutUint16(d.request[1:3], uint16(len(buffer)))
	d.request[3] = address<<1 + 1
	err := d.send(ctx)
	if err != nil {
		return fmt.Errorf("read from 0x%02X failed: %w", address, err)
	}
	if d.response[1] == 0x01 {
		snsctx.Logger(ctx).Debug("adapter busy", "op", "read", "addr", address)
		return ais2dw12.ErrBusBusy
	}
	d.resetBuffers()
	d.request[0] = cmdI2CGetData
	err = d.send(ctx)
	if err != nil {
		return fmt.Errorf("error getting read data from adapter: %w", err)
	}
	if d.response[1] == 0x41 {
		return fmt.Errorf("error reading the I2C slave data from the I2C engine")
	}
	if d.response[3] == 127 || int(d.response[3]) != len(buffer) {
		return fmt.Errorf("invalid data size byte; expected %d, got %d", len(buffer), d.response[3])
	}
	copy(buffer, d.response[4:])
	return nil
}

func (d *MCP2221) SetGPIOConfig(ctx context.Context, pins PinConfigs) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdSetSRAM
	// alter GPIO configuration
	d.request[7] = 0x80
	for i, p := range pins {
		d.request[8+i] = byte(p.Designation) | byte(p.Mode)
	}
	err := d.send(ctx)
	if err != nil {
		return fmt.Errorf("set GP configuration failed: %w", err)
	}
	if d.response[1] != 0x00 {
		return ErrCommandFailed
	}
	return nil
}

func (d *MCP2221) GetGPIOConfig(ctx context.Context) (PinConfigs, error) {
	var res PinConfigs
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdGetSRAM
	err := d.send(ctx)
	if err != nil {
		return res, fmt.Errorf("get GP configuration failed: %w", err)
	}
	if d.response[1] != 0x00 {
		return res, ErrCommandUnsupported
	}
	for i := range res {
		b := d.response[22+i]
		res[i] = PinConfig{
			Mode:        GPIOMode(b & gpioModeMask),
			Designation: GPIODesignation(b & gpioOperationMask),
		}
	}
	return res, nil
}

// ReadGPIO reads the pin values. Pins not configured as GPIO report
// GPIOModeNoOperation.
func (d *MCP2221) ReadGPIO(ctx context.Context) (Pins, error) {
	var res Pins
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdGetGPIO
	err := d.send(ctx)
	if err != nil {
		return res, fmt.Errorf("read GPIO values failed: %w", err)
	}
	if d.response[1] != 0x00 {
		return res, ErrCommandFailed
	}
	for i := range res {
		val, dir := d.response[2+2*i], d.response[3+2*i]
		res[i] = Pin{Mode: GPIOModeNoOperation, Value: val}
		if dir != byte(GPIOModeNoOperation) {
			res[i].Mode = GPIOMode(dir << 3)
		}
	}
	return res, nil
}

func (d *MCP2221) Status(ctx context.Context) (*Status, error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdStatus
	err := d.send(ctx)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return bufferToStatus(d.response), nil
}

// bufferToStatus decodes a status report:
//
//	9-10  requested I2C transfer length
//	11-12 bytes already transferred
//	13    internal I2C data buffer counter
//	14    I2C speed divider
//	15    I2C timeout
//	16-17 I2C address in use
//	25    pending read
func bufferToStatus(buffer []byte) *Status {
	return &Status{
		I2CDataBufferCounter:   int(buffer[13]),
		I2CSpeedDivider:        int(buffer[14]),
		I2CTimeout:             int(buffer[15]),
		ReadPending:            int(buffer[25]),
		CurrentAddress:         hex.EncodeToString(buffer[16:18]),
		LastWriteRequestedSize: binary.LittleEndian.Uint16(buffer[9:11]),
		LastWriteSentSize:      binary.LittleEndian.Uint16(buffer[11:13]),
	}
}

// Release cancels the current I2C transfer, freeing a stuck bus.
func (d *MCP2221) Release(ctx context.Context) error {
	_, err := d.ReleaseBus(ctx)
	return err
}

func (d *MCP2221) ReleaseBus(ctx context.Context) (*Status, error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdStatus
	d.request[2] = cmdCancelTransfer
	err := d.send(ctx)
	if err != nil {
		return nil, fmt.Errorf("release request failed: %w", err)
	}
	return bufferToStatus(d.response), nil
}

// send writes the request report and reads the response into d.response.
func (d *MCP2221) send(ctx context.Context) error {
	dev, err := d.open(d.index)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			snsctx.Logger(ctx).Warn("could not close adapter", "err", err)
		}
	}()
	snsctx.Dump(ctx, "sending message to adapter", d.request)
	n, err := dev.Write(d.request)
	if err != nil {
		return fmt.Errorf("could not write request: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("short write: %d", n)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d.responseWait):
	}
	n, err = dev.Read(d.response)
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("short read: %d", n)
	}
	snsctx.Dump(ctx, "read message from adapter", d.response)
	return nil
}

func (d *MCP2221) resetBuffers() {
	clear(d.request)
	clear(d.response)
}
