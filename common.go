package ais2dw12

import "context"

func (d *Dev) GetDeviceID(ctx context.Context) (byte, error) {
	return d.readByte(ctx, RegWhoAmI)
}

// SetAutoIncrement controls register address auto-increment on multi-byte
// transfers. It is enabled after power-on and the burst reads of this
// package depend on it.
func (d *Dev) SetAutoIncrement(ctx context.Context, enable bool) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.ifAddInc = enable
		return r.encode()
	})
}

func (d *Dev) GetAutoIncrement(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return false, err
	}
	return decodeCtrl2(b).ifAddInc, nil
}

// SetReset requests a software reset of the user registers. The device
// clears the bit once done.
func (d *Dev) SetReset(ctx context.Context, reset bool) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.softReset = reset
		return r.encode()
	})
}

func (d *Dev) GetReset(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return false, err
	}
	return decodeCtrl2(b).softReset, nil
}

// SetBoot reloads the trimming parameters from internal memory.
func (d *Dev) SetBoot(ctx context.Context, boot bool) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.boot = boot
		return r.encode()
	})
}

func (d *Dev) GetBoot(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return false, err
	}
	return decodeCtrl2(b).boot, nil
}

func (d *Dev) SetSelfTest(ctx context.Context, st SelfTest) error {
	return d.update(ctx, RegCtrl3, func(b byte) byte {
		r := decodeCtrl3(b)
		r.st = uint8(st)
		return r.encode()
	})
}

func (d *Dev) GetSelfTest(ctx context.Context) (SelfTest, error) {
	b, err := d.readByte(ctx, RegCtrl3)
	if err != nil {
		return SelfTestDisabled, err
	}
	return selfTests.decode(decodeCtrl3(b).st, SelfTestDisabled), nil
}

func (d *Dev) SetDataReadyMode(ctx context.Context, mode DataReadyMode) error {
	return d.update(ctx, RegCtrl7, func(b byte) byte {
		r := decodeCtrl7(b)
		r.drdyPulsed = uint8(mode)
		return r.encode()
	})
}

func (d *Dev) GetDataReadyMode(ctx context.Context) (DataReadyMode, error) {
	b, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return DataReadyLatched, err
	}
	return dataReadyModes.decode(decodeCtrl7(b).drdyPulsed, DataReadyLatched), nil
}
