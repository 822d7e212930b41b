package ais2dw12

// Status is the content of the STATUS register.
type Status struct {
	DataReady     bool `yaml:"drdy"`
	FreeFall      bool `yaml:"ff_ia"`
	SixD          bool `yaml:"6d_ia"`
	SleepState    bool `yaml:"sleep_state"`
	WakeUp        bool `yaml:"wu_ia"`
	FIFOThreshold bool `yaml:"fifo_ths"`
	Raw           byte `yaml:"raw"`
}

func decodeStatus(b byte) Status {
	return Status{
		DataReady:     b&0x01 != 0,
		FreeFall:      b&0x02 != 0,
		SixD:          b&0x04 != 0,
		SleepState:    b&0x20 != 0,
		WakeUp:        b&0x40 != 0,
		FIFOThreshold: b&0x80 != 0,
		Raw:           b,
	}
}

// StatusDup is the STATUS_DUP register. Unlike STATUS it reports the
// temperature data ready and the FIFO overrun.
type StatusDup struct {
	DataReady            bool `yaml:"drdy"`
	FreeFall             bool `yaml:"ff_ia"`
	SixD                 bool `yaml:"6d_ia"`
	SleepState           bool `yaml:"sleep_state_ia"`
	TemperatureDataReady bool `yaml:"drdy_t"`
	Overrun              bool `yaml:"ovr"`
	Raw                  byte `yaml:"raw"`
}

func decodeStatusDup(b byte) StatusDup {
	return StatusDup{
		DataReady:            b&0x01 != 0,
		FreeFall:             b&0x02 != 0,
		SixD:                 b&0x04 != 0,
		SleepState:           b&0x20 != 0,
		TemperatureDataReady: b&0x40 != 0,
		Overrun:              b&0x80 != 0,
		Raw:                  b,
	}
}

// WakeUpSource is the WAKE_UP_SRC register.
type WakeUpSource struct {
	Z          bool `yaml:"z_wu"`
	Y          bool `yaml:"y_wu"`
	X          bool `yaml:"x_wu"`
	WakeUp     bool `yaml:"wu_ia"`
	SleepState bool `yaml:"sleep_state_ia"`
	FreeFall   bool `yaml:"ff_ia"`
	Raw        byte `yaml:"raw"`
}

func decodeWakeUpSource(b byte) WakeUpSource {
	return WakeUpSource{
		Z:          b&0x01 != 0,
		Y:          b&0x02 != 0,
		X:          b&0x04 != 0,
		WakeUp:     b&0x08 != 0,
		SleepState: b&0x10 != 0,
		FreeFall:   b&0x20 != 0,
		Raw:        b,
	}
}

// SixDSource is the SIXD_SRC register: which axis crossed the 6D threshold
// on its low or high side.
type SixDSource struct {
	XL   bool `yaml:"xl"`
	XH   bool `yaml:"xh"`
	YL   bool `yaml:"yl"`
	YH   bool `yaml:"yh"`
	ZL   bool `yaml:"zl"`
	ZH   bool `yaml:"zh"`
	SixD bool `yaml:"6d_ia"`
	Raw  byte `yaml:"raw"`
}

func decodeSixDSource(b byte) SixDSource {
	return SixDSource{
		XL:   b&0x01 != 0,
		XH:   b&0x02 != 0,
		YL:   b&0x04 != 0,
		YH:   b&0x08 != 0,
		ZL:   b&0x10 != 0,
		ZH:   b&0x20 != 0,
		SixD: b&0x40 != 0,
		Raw:  b,
	}
}

// AllIntSource is the ALL_INT_SRC register. Reading it clears latched
// interrupt sources.
type AllIntSource struct {
	FreeFall    bool `yaml:"ff_ia"`
	WakeUp      bool `yaml:"wu_ia"`
	SixD        bool `yaml:"6d_ia"`
	SleepChange bool `yaml:"sleep_change_ia"`
	Raw         byte `yaml:"raw"`
}

func decodeAllIntSource(b byte) AllIntSource {
	return AllIntSource{
		FreeFall:    b&0x01 != 0,
		WakeUp:      b&0x02 != 0,
		SixD:        b&0x10 != 0,
		SleepChange: b&0x20 != 0,
		Raw:         b,
	}
}

// AllSources groups the event source registers read in one burst starting
// at STATUS_DUP. Register 0x39 sits inside the burst and is skipped.
type AllSources struct {
	StatusDup    StatusDup    `yaml:"status_dup"`
	WakeUpSource WakeUpSource `yaml:"wake_up_src"`
	SixDSource   SixDSource   `yaml:"sixd_src"`
	AllIntSource AllIntSource `yaml:"all_int_src"`
}

const allSourcesLen = 5

func decodeAllSources(buf [allSourcesLen]byte) AllSources {
	return AllSources{
		StatusDup:    decodeStatusDup(buf[0]),
		WakeUpSource: decodeWakeUpSource(buf[1]),
		SixDSource:   decodeSixDSource(buf[3]),
		AllIntSource: decodeAllIntSource(buf[4]),
	}
}
