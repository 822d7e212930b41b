package ais2dw12

import "context"

// SetFreeFallDuration sets the six-bit free-fall duration in 1/ODR steps.
// Bit 5 lives in WAKE_UP_DUR and bits 4..0 in FREE_FALL; both registers are
// read first, WAKE_UP_DUR is written first.
func (d *Dev) SetFreeFallDuration(ctx context.Context, dur uint8) error {
	bd, err := d.readByte(ctx, RegWakeUpDur)
	if err != nil {
		return err
	}
	bf, err := d.readByte(ctx, RegFreeFall)
	if err != nil {
		return err
	}
	wud := decodeWakeUpDur(bd)
	wud.ffDur = (dur & 0x20) >> 5
	ff := decodeFreeFall(bf)
	ff.ffDur = dur & 0x1F
	err = d.writeByte(ctx, RegWakeUpDur, wud.encode())
	if err != nil {
		return err
	}
	return d.writeByte(ctx, RegFreeFall, ff.encode())
}

func (d *Dev) GetFreeFallDuration(ctx context.Context) (uint8, error) {
	bd, err := d.readByte(ctx, RegWakeUpDur)
	if err != nil {
		return 0, err
	}
	bf, err := d.readByte(ctx, RegFreeFall)
	if err != nil {
		return 0, err
	}
	return (decodeWakeUpDur(bd).ffDur << 5) + decodeFreeFall(bf).ffDur, nil
}

func (d *Dev) SetFreeFallThreshold(ctx context.Context, ths FreeFallThreshold) error {
	return d.update(ctx, RegFreeFall, func(b byte) byte {
		r := decodeFreeFall(b)
		r.ffThs = uint8(ths)
		return r.encode()
	})
}

func (d *Dev) GetFreeFallThreshold(ctx context.Context) (FreeFallThreshold, error) {
	b, err := d.readByte(ctx, RegFreeFall)
	if err != nil {
		return FreeFall5LSb, err
	}
	return freeFallThresholds.decode(decodeFreeFall(b).ffThs, FreeFall5LSb), nil
}
