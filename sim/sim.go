// Package sim is an in-memory AIS2DW12 register file. It satisfies the
// driver Transport interface and records every transaction, which makes it
// usable both as a bench-less CLI backend and as a test double.
package sim

import (
	"context"
	"fmt"
	"sync"
)

const (
	regWhoAmI = 0x0F
	regCtrl2  = 0x21

	ctrl2IfAddInc  = 0x04
	ctrl2SoftReset = 0x40
	ctrl2Boot      = 0x80
)

// Op is the direction of a recorded transaction.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

func (o Op) String() string {
	if o == OpWrite {
		return "write"
	}
	return "read"
}

// Call is one recorded transaction.
type Call struct {
	Op   Op
	Reg  byte
	Data []byte
}

func (c Call) String() string {
	return fmt.Sprintf("%s 0x%02X % X", c.Op, c.Reg, c.Data)
}

// Device is a simulated register file. Multi-byte transfers auto-increment
// the address. The zero value is not usable; use New.
type Device struct {
	mx       sync.Mutex
	regs     [256]byte
	defaults [256]byte
	calls    []Call
	readErr  map[byte]error
	writeErr map[byte]error
}

type Opt func(d *Device)

// WithRegister presets a register both at power-on and after a soft reset.
func WithRegister(reg, val byte) Opt {
	return func(d *Device) {
		d.defaults[reg] = val
	}
}

// New returns a device in its power-on state: WHO_AM_I reads 0x44 and
// address auto-increment is enabled.
func New(opts ...Opt) *Device {
	d := &Device{
		readErr:  make(map[byte]error),
		writeErr: make(map[byte]error),
	}
	d.defaults[regWhoAmI] = 0x44
	d.defaults[regCtrl2] = ctrl2IfAddInc
	for _, opt := range opts {
		opt(d)
	}
	d.regs = d.defaults
	return d
}

func (d *Device) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.calls = append(d.calls, Call{Op: OpRead, Reg: reg, Data: nil})
	if err := d.readErr[reg]; err != nil {
		return err
	}
	for i := range buf {
		buf[i] = d.regs[byte(int(reg)+i)]
	}
	d.calls[len(d.calls)-1].Data = append([]byte(nil), buf...)
	return nil
}

func (d *Device) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.calls = append(d.calls, Call{Op: OpWrite, Reg: reg, Data: append([]byte(nil), buf...)})
	if err := d.writeErr[reg]; err != nil {
		return err
	}
	for i, b := range buf {
		d.store(byte(int(reg)+i), b)
	}
	return nil
}

func (d *Device) store(reg, val byte) {
	if reg != regCtrl2 {
		d.regs[reg] = val
		return
	}
	// soft reset and boot complete immediately and clear themselves
	if val&ctrl2SoftReset != 0 {
		d.regs = d.defaults
		return
	}
	d.regs[reg] = val &^ ctrl2Boot
}

// Register returns the current content of reg without recording a call.
func (d *Device) Register(reg byte) byte {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.regs[reg]
}

// SetRegister changes reg without recording a call, for example to raise an
// event source.
func (d *Device) SetRegister(reg, val byte) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.regs[reg] = val
}

// FailRead makes every read starting at reg return err. A nil err clears it.
func (d *Device) FailRead(reg byte, err error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.readErr[reg] = err
}

// FailWrite makes every write starting at reg return err without changing
// the register file. A nil err clears it.
func (d *Device) FailWrite(reg byte, err error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.writeErr[reg] = err
}

// Calls returns a copy of the transaction log.
func (d *Device) Calls() []Call {
	d.mx.Lock()
	defer d.mx.Unlock()
	return append([]Call(nil), d.calls...)
}

// Writes returns the recorded write transactions only.
func (d *Device) Writes() []Call {
	d.mx.Lock()
	defer d.mx.Unlock()
	var res []Call
	for _, c := range d.calls {
		if c.Op == OpWrite {
			res = append(res, c)
		}
	}
	return res
}

func (d *Device) ResetCalls() {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.calls = nil
}
