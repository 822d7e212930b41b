package ais2dw12

import "context"

// Int1Route selects the signals driven on the INT1 pin (CTRL4_INT1_PAD_CTRL).
type Int1Route struct {
	DataReady     bool `yaml:"drdy"`
	FIFOThreshold bool `yaml:"fifo_threshold"`
	FIFOFull      bool `yaml:"fifo_full"`
	FreeFall      bool `yaml:"free_fall"`
	WakeUp        bool `yaml:"wake_up"`
	SixD          bool `yaml:"6d"`
}

// Int2Route selects the signals driven on the INT2 pin (CTRL5_INT2_PAD_CTRL).
type Int2Route struct {
	DataReady       bool `yaml:"drdy"`
	FIFOThreshold   bool `yaml:"fifo_threshold"`
	FIFOFull        bool `yaml:"fifo_full"`
	FIFOOverrun     bool `yaml:"fifo_overrun"`
	TemperatureDRDY bool `yaml:"drdy_t"`
	Boot            bool `yaml:"boot"`
	SleepChange     bool `yaml:"sleep_change"`
	SleepState      bool `yaml:"sleep_state"`
}

// interruptsEnabled reports whether any embedded function is routed to a
// pin. The embedded functions only raise interrupts when CTRL7
// interrupts_enable is set.
func interruptsEnabled(int1 Int1Route, int2 Int2Route) bool {
	return int1.FreeFall || int1.WakeUp || int1.SixD || int2.SleepState || int2.SleepChange
}

// SetInt1Route writes the INT1 routing and recomputes the global interrupt
// enable from the new INT1 routing and the current INT2 routing.
//
// CTRL5_INT2 and CTRL7 are read first. CTRL4_INT1 is written before CTRL7;
// a failed CTRL7 write leaves the new routing without the matching enable.
func (d *Dev) SetInt1Route(ctx context.Context, route Int1Route) error {
	b5, err := d.readByte(ctx, RegCtrl5Int2)
	if err != nil {
		return err
	}
	b7, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return err
	}
	c7 := decodeCtrl7(b7)
	c7.interruptsEnable = interruptsEnabled(route, decodeInt2Route(b5))
	err = d.writeByte(ctx, RegCtrl4Int1, route.encode())
	if err != nil {
		return err
	}
	return d.writeByte(ctx, RegCtrl7, c7.encode())
}

func (d *Dev) GetInt1Route(ctx context.Context) (Int1Route, error) {
	b, err := d.readByte(ctx, RegCtrl4Int1)
	if err != nil {
		return Int1Route{}, err
	}
	return decodeInt1Route(b), nil
}

// SetInt2Route is the INT2 counterpart of SetInt1Route.
func (d *Dev) SetInt2Route(ctx context.Context, route Int2Route) error {
	b4, err := d.readByte(ctx, RegCtrl4Int1)
	if err != nil {
		return err
	}
	b7, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return err
	}
	c7 := decodeCtrl7(b7)
	c7.interruptsEnable = interruptsEnabled(decodeInt1Route(b4), route)
	err = d.writeByte(ctx, RegCtrl5Int2, route.encode())
	if err != nil {
		return err
	}
	return d.writeByte(ctx, RegCtrl7, c7.encode())
}

func (d *Dev) GetInt2Route(ctx context.Context) (Int2Route, error) {
	b, err := d.readByte(ctx, RegCtrl5Int2)
	if err != nil {
		return Int2Route{}, err
	}
	return decodeInt2Route(b), nil
}

// SetAllOnInt1 routes every INT2 signal to INT1 as well.
func (d *Dev) SetAllOnInt1(ctx context.Context, enable bool) error {
	return d.update(ctx, RegCtrl7, func(b byte) byte {
		r := decodeCtrl7(b)
		r.int2OnInt1 = enable
		return r.encode()
	})
}

func (d *Dev) GetAllOnInt1(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return false, err
	}
	return decodeCtrl7(b).int2OnInt1, nil
}

func (d *Dev) SetPinPolarity(ctx context.Context, p PinPolarity) error {
	return d.update(ctx, RegCtrl3, func(b byte) byte {
		r := decodeCtrl3(b)
		r.hLActive = uint8(p)
		return r.encode()
	})
}

func (d *Dev) GetPinPolarity(ctx context.Context) (PinPolarity, error) {
	b, err := d.readByte(ctx, RegCtrl3)
	if err != nil {
		return ActiveHigh, err
	}
	return pinPolarities.decode(decodeCtrl3(b).hLActive, ActiveHigh), nil
}

// SetIntNotification selects latched or pulsed interrupt requests. Latched
// requests are cleared by reading ALL_INT_SRC.
func (d *Dev) SetIntNotification(ctx context.Context, n IntNotification) error {
	return d.update(ctx, RegCtrl3, func(b byte) byte {
		r := decodeCtrl3(b)
		r.lir = uint8(n)
		return r.encode()
	})
}

func (d *Dev) GetIntNotification(ctx context.Context) (IntNotification, error) {
	b, err := d.readByte(ctx, RegCtrl3)
	if err != nil {
		return IntPulsed, err
	}
	return intNotifications.decode(decodeCtrl3(b).lir, IntPulsed), nil
}

func (d *Dev) SetPinMode(ctx context.Context, m PinMode) error {
	return d.update(ctx, RegCtrl3, func(b byte) byte {
		r := decodeCtrl3(b)
		r.ppOD = uint8(m)
		return r.encode()
	})
}

func (d *Dev) GetPinMode(ctx context.Context) (PinMode, error) {
	b, err := d.readByte(ctx, RegCtrl3)
	if err != nil {
		return PushPull, err
	}
	return pinModes.decode(decodeCtrl3(b).ppOD, PushPull), nil
}
