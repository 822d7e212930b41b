package ais2dw12

import "context"

func (d *Dev) SetSPIMode(ctx context.Context, mode SPIMode) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.sim = uint8(mode)
		return r.encode()
	})
}

func (d *Dev) GetSPIMode(ctx context.Context) (SPIMode, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return SPI4Wire, err
	}
	return spiModes.decode(decodeCtrl2(b).sim, SPI4Wire), nil
}

// SetI2CInterface disables the I2C block when the device is used on SPI
// only.
func (d *Dev) SetI2CInterface(ctx context.Context, mode I2CMode) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.i2cDisable = uint8(mode)
		return r.encode()
	})
}

func (d *Dev) GetI2CInterface(ctx context.Context) (I2CMode, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return I2CEnabled, err
	}
	return i2cModes.decode(decodeCtrl2(b).i2cDisable, I2CEnabled), nil
}

func (d *Dev) SetCSMode(ctx context.Context, mode CSPullUp) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.csPUDisc = uint8(mode)
		return r.encode()
	})
}

func (d *Dev) GetCSMode(ctx context.Context) (CSPullUp, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return CSPullUpConnected, err
	}
	return csPullUps.decode(decodeCtrl2(b).csPUDisc, CSPullUpConnected), nil
}
