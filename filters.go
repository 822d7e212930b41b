package ais2dw12

import "context"

// SetFilterPath selects the output data path. CTRL6 fds and CTRL7
// usr_off_on_out are read first, then written in that order.
func (d *Dev) SetFilterPath(ctx context.Context, path FilterPath) error {
	b6, err := d.readByte(ctx, RegCtrl6)
	if err != nil {
		return err
	}
	b7, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return err
	}
	c6 := decodeCtrl6(b6)
	c6.fds = (uint8(path) & 0x10) >> 4
	c7 := decodeCtrl7(b7)
	c7.usrOffOnOut = uint8(path) & 0x01
	err = d.writeByte(ctx, RegCtrl6, c6.encode())
	if err != nil {
		return err
	}
	return d.writeByte(ctx, RegCtrl7, c7.encode())
}

func (d *Dev) GetFilterPath(ctx context.Context) (FilterPath, error) {
	b6, err := d.readByte(ctx, RegCtrl6)
	if err != nil {
		return FilterPathLowPass, err
	}
	b7, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return FilterPathLowPass, err
	}
	key := (decodeCtrl6(b6).fds << 4) + decodeCtrl7(b7).usrOffOnOut
	return filterPaths.decode(key, FilterPathLowPass), nil
}

func (d *Dev) SetFilterBandwidth(ctx context.Context, bw Bandwidth) error {
	return d.update(ctx, RegCtrl6, func(b byte) byte {
		r := decodeCtrl6(b)
		r.bwFilt = uint8(bw)
		return r.encode()
	})
}

func (d *Dev) GetFilterBandwidth(ctx context.Context) (Bandwidth, error) {
	b, err := d.readByte(ctx, RegCtrl6)
	if err != nil {
		return BandwidthODRDiv2, err
	}
	return bandwidths.decode(decodeCtrl6(b).bwFilt, BandwidthODRDiv2), nil
}

// SetReferenceMode enables the high-pass filter reference mode: the output
// is the difference from the sample latched when the mode was enabled.
func (d *Dev) SetReferenceMode(ctx context.Context, enable bool) error {
	return d.update(ctx, RegCtrl7, func(b byte) byte {
		r := decodeCtrl7(b)
		r.hpRefMode = enable
		return r.encode()
	})
}

func (d *Dev) GetReferenceMode(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return false, err
	}
	return decodeCtrl7(b).hpRefMode, nil
}
