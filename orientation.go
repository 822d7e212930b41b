package ais2dw12

import "context"

// SetSixDThreshold sets the 6D/4D angle threshold code (0 to 3).
func (d *Dev) SetSixDThreshold(ctx context.Context, ths uint8) error {
	return d.update(ctx, RegSixDThs, func(b byte) byte {
		r := decodeSixDThs(b)
		r.ths = ths
		return r.encode()
	})
}

func (d *Dev) GetSixDThreshold(ctx context.Context) (uint8, error) {
	b, err := d.readByte(ctx, RegSixDThs)
	if err != nil {
		return 0, err
	}
	return decodeSixDThs(b).ths, nil
}

// SetFourDMode restricts orientation detection to the X and Y axes.
func (d *Dev) SetFourDMode(ctx context.Context, enable bool) error {
	return d.update(ctx, RegSixDThs, func(b byte) byte {
		r := decodeSixDThs(b)
		r.fourD = enable
		return r.encode()
	})
}

func (d *Dev) GetFourDMode(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegSixDThs)
	if err != nil {
		return false, err
	}
	return decodeSixDThs(b).fourD, nil
}

func (d *Dev) GetSixDSource(ctx context.Context) (SixDSource, error) {
	b, err := d.readByte(ctx, RegSixDSrc)
	if err != nil {
		return SixDSource{}, err
	}
	return decodeSixDSource(b), nil
}

func (d *Dev) SetSixDFeed(ctx context.Context, feed SixDFeed) error {
	return d.update(ctx, RegCtrl7, func(b byte) byte {
		r := decodeCtrl7(b)
		r.lpassOn6D = uint8(feed)
		return r.encode()
	})
}

func (d *Dev) GetSixDFeed(ctx context.Context) (SixDFeed, error) {
	b, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return SixDFeedODRDiv2, err
	}
	return sixDFeeds.decode(decodeCtrl7(b).lpassOn6D, SixDFeedODRDiv2), nil
}
