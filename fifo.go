package ais2dw12

import "context"

// SetFIFOWatermark sets the FIFO threshold level (0 to 31 samples).
func (d *Dev) SetFIFOWatermark(ctx context.Context, level uint8) error {
	return d.update(ctx, RegFIFOCtrl, func(b byte) byte {
		r := decodeFIFOCtrl(b)
		r.fth = level
		return r.encode()
	})
}

func (d *Dev) GetFIFOWatermark(ctx context.Context) (uint8, error) {
	b, err := d.readByte(ctx, RegFIFOCtrl)
	if err != nil {
		return 0, err
	}
	return decodeFIFOCtrl(b).fth, nil
}

func (d *Dev) SetFIFOMode(ctx context.Context, mode FIFOMode) error {
	return d.update(ctx, RegFIFOCtrl, func(b byte) byte {
		r := decodeFIFOCtrl(b)
		r.fmode = uint8(mode)
		return r.encode()
	})
}

func (d *Dev) GetFIFOMode(ctx context.Context) (FIFOMode, error) {
	b, err := d.readByte(ctx, RegFIFOCtrl)
	if err != nil {
		return FIFOBypass, err
	}
	return fifoModes.decode(decodeFIFOCtrl(b).fmode, FIFOBypass), nil
}

// GetFIFODataLevel returns the number of unread samples in the FIFO.
func (d *Dev) GetFIFODataLevel(ctx context.Context) (uint8, error) {
	b, err := d.readByte(ctx, RegFIFOSamples)
	if err != nil {
		return 0, err
	}
	return fifoSamplesDiff.get(b), nil
}

func (d *Dev) GetFIFOOverrunFlag(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegFIFOSamples)
	if err != nil {
		return false, err
	}
	return fifoSamplesOVR.flag(b), nil
}

func (d *Dev) GetFIFOWatermarkFlag(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegFIFOSamples)
	if err != nil {
		return false, err
	}
	return fifoSamplesFTH.flag(b), nil
}
