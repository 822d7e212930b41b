package ais2dw12

import "context"

// SetWakeUpThreshold sets the wake-up threshold. One LSb is FS/64; only the
// six low bits are used.
func (d *Dev) SetWakeUpThreshold(ctx context.Context, ths uint8) error {
	return d.update(ctx, RegWakeUpThs, func(b byte) byte {
		r := decodeWakeUpThs(b)
		r.wkThs = ths
		return r.encode()
	})
}

func (d *Dev) GetWakeUpThreshold(ctx context.Context) (uint8, error) {
	b, err := d.readByte(ctx, RegWakeUpThs)
	if err != nil {
		return 0, err
	}
	return decodeWakeUpThs(b).wkThs, nil
}

// SetWakeUpDuration sets the wake-up duration in 1/ODR steps (0 to 3).
func (d *Dev) SetWakeUpDuration(ctx context.Context, dur uint8) error {
	return d.update(ctx, RegWakeUpDur, func(b byte) byte {
		r := decodeWakeUpDur(b)
		r.wakeDur = dur
		return r.encode()
	})
}

func (d *Dev) GetWakeUpDuration(ctx context.Context) (uint8, error) {
	b, err := d.readByte(ctx, RegWakeUpDur)
	if err != nil {
		return 0, err
	}
	return decodeWakeUpDur(b).wakeDur, nil
}

func (d *Dev) SetWakeUpFeed(ctx context.Context, feed WakeUpFeed) error {
	return d.update(ctx, RegCtrl7, func(b byte) byte {
		r := decodeCtrl7(b)
		r.usrOffOnWU = uint8(feed)
		return r.encode()
	})
}

func (d *Dev) GetWakeUpFeed(ctx context.Context) (WakeUpFeed, error) {
	b, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return WakeUpFeedHighPass, err
	}
	return wakeUpFeeds.decode(decodeCtrl7(b).usrOffOnWU, WakeUpFeedHighPass), nil
}

// SetActivityMode splits the mode between WAKE_UP_THS sleep_on and
// WAKE_UP_DUR stationary. Both are read before either is written.
func (d *Dev) SetActivityMode(ctx context.Context, mode ActivityMode) error {
	bt, err := d.readByte(ctx, RegWakeUpThs)
	if err != nil {
		return err
	}
	bd, err := d.readByte(ctx, RegWakeUpDur)
	if err != nil {
		return err
	}
	ths := decodeWakeUpThs(bt)
	ths.sleepOn = uint8(mode) & 0x01
	dur := decodeWakeUpDur(bd)
	dur.stationary = (uint8(mode) & 0x02) >> 1
	err = d.writeByte(ctx, RegWakeUpThs, ths.encode())
	if err != nil {
		return err
	}
	return d.writeByte(ctx, RegWakeUpDur, dur.encode())
}

func (d *Dev) GetActivityMode(ctx context.Context) (ActivityMode, error) {
	bt, err := d.readByte(ctx, RegWakeUpThs)
	if err != nil {
		return ActivityNone, err
	}
	bd, err := d.readByte(ctx, RegWakeUpDur)
	if err != nil {
		return ActivityNone, err
	}
	key := (decodeWakeUpDur(bd).stationary << 1) + decodeWakeUpThs(bt).sleepOn
	return activityModes.decode(key, ActivityNone), nil
}

// SetActivitySleepDuration sets the time to go back to sleep in 512/ODR
// steps (0 to 15).
func (d *Dev) SetActivitySleepDuration(ctx context.Context, dur uint8) error {
	return d.update(ctx, RegWakeUpDur, func(b byte) byte {
		r := decodeWakeUpDur(b)
		r.sleepDur = dur
		return r.encode()
	})
}

func (d *Dev) GetActivitySleepDuration(ctx context.Context) (uint8, error) {
	b, err := d.readByte(ctx, RegWakeUpDur)
	if err != nil {
		return 0, err
	}
	return decodeWakeUpDur(b).sleepDur, nil
}
