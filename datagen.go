package ais2dw12

import "context"

func (d *Dev) SetPowerMode(ctx context.Context, mode PowerMode) error {
	return d.update(ctx, RegCtrl1, func(b byte) byte {
		r := decodeCtrl1(b)
		r.mode = (uint8(mode) & 0x0C) >> 2
		r.lpMode = uint8(mode) & 0x03
		return r.encode()
	})
}

// GetPowerMode returns PowerModeLowPower4 when CTRL1 holds a reserved
// combination.
func (d *Dev) GetPowerMode(ctx context.Context) (PowerMode, error) {
	b, err := d.readByte(ctx, RegCtrl1)
	if err != nil {
		return PowerModeLowPower4, err
	}
	r := decodeCtrl1(b)
	return powerModes.decode((r.mode<<2)+r.lpMode, PowerModeLowPower4), nil
}

// SetDataRate writes the odr code to CTRL1 and the trigger source to CTRL3.
// Both registers are read before either is written; if the CTRL3 write fails
// the new CTRL1 value stays in place.
func (d *Dev) SetDataRate(ctx context.Context, rate DataRate) error {
	b1, err := d.readByte(ctx, RegCtrl1)
	if err != nil {
		return err
	}
	b3, err := d.readByte(ctx, RegCtrl3)
	if err != nil {
		return err
	}
	c1 := decodeCtrl1(b1)
	c1.odr = uint8(rate) & 0x0F
	c3 := decodeCtrl3(b3)
	c3.slpMode = (uint8(rate) & 0x30) >> 4
	err = d.writeByte(ctx, RegCtrl1, c1.encode())
	if err != nil {
		return err
	}
	return d.writeByte(ctx, RegCtrl3, c3.encode())
}

func (d *Dev) GetDataRate(ctx context.Context) (DataRate, error) {
	b1, err := d.readByte(ctx, RegCtrl1)
	if err != nil {
		return DataRateOff, err
	}
	b3, err := d.readByte(ctx, RegCtrl3)
	if err != nil {
		return DataRateOff, err
	}
	key := (decodeCtrl3(b3).slpMode << 4) + decodeCtrl1(b1).odr
	return dataRates.decode(key, DataRateOff), nil
}

// SetBlockDataUpdate makes output registers hold until both bytes of a
// sample have been read.
func (d *Dev) SetBlockDataUpdate(ctx context.Context, enable bool) error {
	return d.update(ctx, RegCtrl2, func(b byte) byte {
		r := decodeCtrl2(b)
		r.bdu = enable
		return r.encode()
	})
}

func (d *Dev) GetBlockDataUpdate(ctx context.Context) (bool, error) {
	b, err := d.readByte(ctx, RegCtrl2)
	if err != nil {
		return false, err
	}
	return decodeCtrl2(b).bdu, nil
}

func (d *Dev) SetFullScale(ctx context.Context, fs FullScale) error {
	return d.update(ctx, RegCtrl6, func(b byte) byte {
		r := decodeCtrl6(b)
		r.fs = uint8(fs)
		return r.encode()
	})
}

// GetFullScale returns FullScale2g for the two reserved fs codes.
func (d *Dev) GetFullScale(ctx context.Context) (FullScale, error) {
	b, err := d.readByte(ctx, RegCtrl6)
	if err != nil {
		return FullScale2g, err
	}
	return fullScales.decode(decodeCtrl6(b).fs, FullScale2g), nil
}

func (d *Dev) GetStatus(ctx context.Context) (Status, error) {
	b, err := d.readByte(ctx, RegStatus)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(b), nil
}

func (d *Dev) GetDataReady(ctx context.Context) (bool, error) {
	s, err := d.GetStatus(ctx)
	return s.DataReady, err
}

// GetAllSources reads the event source registers in a single transaction.
func (d *Dev) GetAllSources(ctx context.Context) (AllSources, error) {
	var buf [allSourcesLen]byte
	err := d.readReg(ctx, RegStatusDup, buf[:])
	if err != nil {
		return AllSources{}, err
	}
	return decodeAllSources(buf), nil
}

// GetWakeUpSource reads WAKE_UP_SRC alone. A latched interrupt stays latched;
// only ALL_INT_SRC clears it.
func (d *Dev) GetWakeUpSource(ctx context.Context) (WakeUpSource, error) {
	b, err := d.readByte(ctx, RegWakeUpSrc)
	if err != nil {
		return WakeUpSource{}, err
	}
	return decodeWakeUpSource(b), nil
}

// User offsets are two's complement, weighted by OffsetWeight. They apply to
// the output and/or the wake-up path depending on FilterPath and WakeUpFeed.

func (d *Dev) SetUserOffsetX(ctx context.Context, val int8) error {
	return d.writeByte(ctx, RegXOfsUsr, byte(val))
}

func (d *Dev) GetUserOffsetX(ctx context.Context) (int8, error) {
	b, err := d.readByte(ctx, RegXOfsUsr)
	return int8(b), err
}

func (d *Dev) SetUserOffsetY(ctx context.Context, val int8) error {
	return d.writeByte(ctx, RegYOfsUsr, byte(val))
}

func (d *Dev) GetUserOffsetY(ctx context.Context) (int8, error) {
	b, err := d.readByte(ctx, RegYOfsUsr)
	return int8(b), err
}

func (d *Dev) SetUserOffsetZ(ctx context.Context, val int8) error {
	return d.writeByte(ctx, RegZOfsUsr, byte(val))
}

func (d *Dev) GetUserOffsetZ(ctx context.Context) (int8, error) {
	b, err := d.readByte(ctx, RegZOfsUsr)
	return int8(b), err
}

func (d *Dev) SetOffsetWeight(ctx context.Context, w OffsetWeight) error {
	return d.update(ctx, RegCtrl7, func(b byte) byte {
		r := decodeCtrl7(b)
		r.usrOffW = uint8(w)
		return r.encode()
	})
}

func (d *Dev) GetOffsetWeight(ctx context.Context) (OffsetWeight, error) {
	b, err := d.readByte(ctx, RegCtrl7)
	if err != nil {
		return OffsetWeight977ug, err
	}
	return offsetWeights.decode(decodeCtrl7(b).usrOffW, OffsetWeight977ug), nil
}

// sample assembles a little-endian register pair. The high byte is
// sign-carrying.
func sample(low, high byte) int16 {
	return int16(high)*256 + int16(low)
}

// GetTemperatureRaw reads OUT_T_L and OUT_T_H in one transaction.
func (d *Dev) GetTemperatureRaw(ctx context.Context) (int16, error) {
	var buf [2]byte
	err := d.readReg(ctx, RegOutTL, buf[:])
	if err != nil {
		return 0, err
	}
	return sample(buf[0], buf[1]), nil
}

// GetAccelerationRaw reads the X, Y and Z samples in one transaction.
func (d *Dev) GetAccelerationRaw(ctx context.Context) ([3]int16, error) {
	var buf [6]byte
	var res [3]int16
	err := d.readReg(ctx, RegOutXL, buf[:])
	if err != nil {
		return res, err
	}
	for i := range res {
		res[i] = sample(buf[2*i], buf[2*i+1])
	}
	return res, nil
}

// GetAccelerationMg reads the configured full scale and one sample and
// converts it to milli-g.
func (d *Dev) GetAccelerationMg(ctx context.Context) ([3]float32, error) {
	var res [3]float32
	fs, err := d.GetFullScale(ctx)
	if err != nil {
		return res, err
	}
	raw, err := d.GetAccelerationRaw(ctx)
	if err != nil {
		return res, err
	}
	for i, v := range raw {
		res[i] = fs.ToMg(v)
	}
	return res, nil
}
