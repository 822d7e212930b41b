package ais2dw12

import "fmt"

// Register is an AIS2DW12 register address.
type Register byte

const (
	RegOutTL       Register = 0x0D
	RegOutTH       Register = 0x0E
	RegWhoAmI      Register = 0x0F
	RegCtrl1       Register = 0x20
	RegCtrl2       Register = 0x21
	RegCtrl3       Register = 0x22
	RegCtrl4Int1   Register = 0x23
	RegCtrl5Int2   Register = 0x24
	RegCtrl6       Register = 0x25
	RegOutT        Register = 0x26
	RegStatus      Register = 0x27
	RegOutXL       Register = 0x28
	RegOutXH       Register = 0x29
	RegOutYL       Register = 0x2A
	RegOutYH       Register = 0x2B
	RegOutZL       Register = 0x2C
	RegOutZH       Register = 0x2D
	RegFIFOCtrl    Register = 0x2E
	RegFIFOSamples Register = 0x2F
	RegSixDThs     Register = 0x30
	RegWakeUpThs   Register = 0x34
	RegWakeUpDur   Register = 0x35
	RegFreeFall    Register = 0x36
	RegStatusDup   Register = 0x37
	RegWakeUpSrc   Register = 0x38
	RegSixDSrc     Register = 0x3A
	RegAllIntSrc   Register = 0x3B
	RegXOfsUsr     Register = 0x3C
	RegYOfsUsr     Register = 0x3D
	RegZOfsUsr     Register = 0x3E
	RegCtrl7       Register = 0x3F
)

var registerNames = map[Register]string{
	RegOutTL:       "OUT_T_L",
	RegOutTH:       "OUT_T_H",
	RegWhoAmI:      "WHO_AM_I",
	RegCtrl1:       "CTRL1",
	RegCtrl2:       "CTRL2",
	RegCtrl3:       "CTRL3",
	RegCtrl4Int1:   "CTRL4_INT1_PAD_CTRL",
	RegCtrl5Int2:   "CTRL5_INT2_PAD_CTRL",
	RegCtrl6:       "CTRL6",
	RegOutT:        "OUT_T",
	RegStatus:      "STATUS",
	RegOutXL:       "OUT_X_L",
	RegOutXH:       "OUT_X_H",
	RegOutYL:       "OUT_Y_L",
	RegOutYH:       "OUT_Y_H",
	RegOutZL:       "OUT_Z_L",
	RegOutZH:       "OUT_Z_H",
	RegFIFOCtrl:    "FIFO_CTRL",
	RegFIFOSamples: "FIFO_SAMPLES",
	RegSixDThs:     "SIXD_THS",
	RegWakeUpThs:   "WAKE_UP_THS",
	RegWakeUpDur:   "WAKE_UP_DUR",
	RegFreeFall:    "FREE_FALL",
	RegStatusDup:   "STATUS_DUP",
	RegWakeUpSrc:   "WAKE_UP_SRC",
	RegSixDSrc:     "SIXD_SRC",
	RegAllIntSrc:   "ALL_INT_SRC",
	RegXOfsUsr:     "X_OFS_USR",
	RegYOfsUsr:     "Y_OFS_USR",
	RegZOfsUsr:     "Z_OFS_USR",
	RegCtrl7:       "CTRL7",
}

func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("REG_0x%02X", byte(r))
}

// field is a contiguous run of bits inside a register byte.
type field struct {
	shift uint8
	width uint8
}

func (f field) mask() byte {
	return byte((1<<f.width)-1) << f.shift
}

func (f field) get(b byte) uint8 {
	return (b & f.mask()) >> f.shift
}

func (f field) put(v uint8) byte {
	return (v << f.shift) & f.mask()
}

func (f field) flag(b byte) bool {
	return f.get(b) != 0
}

func bit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// CTRL1
var (
	ctrl1LPMode = field{0, 2}
	ctrl1Mode   = field{2, 2}
	ctrl1ODR    = field{4, 4}
)

type ctrl1 struct {
	lpMode uint8
	mode   uint8
	odr    uint8
}

func decodeCtrl1(b byte) ctrl1 {
	return ctrl1{
		lpMode: ctrl1LPMode.get(b),
		mode:   ctrl1Mode.get(b),
		odr:    ctrl1ODR.get(b),
	}
}

func (r ctrl1) encode() byte {
	return ctrl1LPMode.put(r.lpMode) | ctrl1Mode.put(r.mode) | ctrl1ODR.put(r.odr)
}

// CTRL2
var (
	ctrl2SIM        = field{0, 1}
	ctrl2I2CDisable = field{1, 1}
	ctrl2IfAddInc   = field{2, 1}
	ctrl2BDU        = field{3, 1}
	ctrl2CSPUDisc   = field{4, 1}
	ctrl2SoftReset  = field{6, 1}
	ctrl2Boot       = field{7, 1}
)

const ctrl2Reserved byte = 0b0010_0000

type ctrl2 struct {
	sim        uint8
	i2cDisable uint8
	ifAddInc   bool
	bdu        bool
	csPUDisc   uint8
	softReset  bool
	boot       bool
	reserved   byte
}

func decodeCtrl2(b byte) ctrl2 {
	return ctrl2{
		sim:        ctrl2SIM.get(b),
		i2cDisable: ctrl2I2CDisable.get(b),
		ifAddInc:   ctrl2IfAddInc.flag(b),
		bdu:        ctrl2BDU.flag(b),
		csPUDisc:   ctrl2CSPUDisc.get(b),
		softReset:  ctrl2SoftReset.flag(b),
		boot:       ctrl2Boot.flag(b),
		reserved:   b & ctrl2Reserved,
	}
}

func (r ctrl2) encode() byte {
	return ctrl2SIM.put(r.sim) |
		ctrl2I2CDisable.put(r.i2cDisable) |
		ctrl2IfAddInc.put(bit(r.ifAddInc)) |
		ctrl2BDU.put(bit(r.bdu)) |
		ctrl2CSPUDisc.put(r.csPUDisc) |
		ctrl2SoftReset.put(bit(r.softReset)) |
		ctrl2Boot.put(bit(r.boot)) |
		r.reserved&ctrl2Reserved
}

// CTRL3
var (
	ctrl3SlpMode  = field{0, 2}
	ctrl3HLActive = field{3, 1}
	ctrl3LIR      = field{4, 1}
	ctrl3PPOD     = field{5, 1}
	ctrl3ST       = field{6, 2}
)

const ctrl3Reserved byte = 0b0000_0100

type ctrl3 struct {
	slpMode  uint8
	hLActive uint8
	lir      uint8
	ppOD     uint8
	st       uint8
	reserved byte
}

func decodeCtrl3(b byte) ctrl3 {
	return ctrl3{
		slpMode:  ctrl3SlpMode.get(b),
		hLActive: ctrl3HLActive.get(b),
		lir:      ctrl3LIR.get(b),
		ppOD:     ctrl3PPOD.get(b),
		st:       ctrl3ST.get(b),
		reserved: b & ctrl3Reserved,
	}
}

func (r ctrl3) encode() byte {
	return ctrl3SlpMode.put(r.slpMode) |
		ctrl3HLActive.put(r.hLActive) |
		ctrl3LIR.put(r.lir) |
		ctrl3PPOD.put(r.ppOD) |
		ctrl3ST.put(r.st) |
		r.reserved&ctrl3Reserved
}

// CTRL4_INT1_PAD_CTRL
var (
	int1DRDY  = field{0, 1}
	int1FTH   = field{1, 1}
	int1Diff5 = field{2, 1}
	int1FF    = field{4, 1}
	int1WU    = field{5, 1}
	int1SixD  = field{7, 1}
)

func decodeInt1Route(b byte) Int1Route {
	return Int1Route{
		DataReady:     int1DRDY.flag(b),
		FIFOThreshold: int1FTH.flag(b),
		FIFOFull:      int1Diff5.flag(b),
		FreeFall:      int1FF.flag(b),
		WakeUp:        int1WU.flag(b),
		SixD:          int1SixD.flag(b),
	}
}

func (r Int1Route) encode() byte {
	return int1DRDY.put(bit(r.DataReady)) |
		int1FTH.put(bit(r.FIFOThreshold)) |
		int1Diff5.put(bit(r.FIFOFull)) |
		int1FF.put(bit(r.FreeFall)) |
		int1WU.put(bit(r.WakeUp)) |
		int1SixD.put(bit(r.SixD))
}

// CTRL5_INT2_PAD_CTRL
var (
	int2DRDY       = field{0, 1}
	int2FTH        = field{1, 1}
	int2Diff5      = field{2, 1}
	int2OVR        = field{3, 1}
	int2DRDYT      = field{4, 1}
	int2Boot       = field{5, 1}
	int2SleepChg   = field{6, 1}
	int2SleepState = field{7, 1}
)

func decodeInt2Route(b byte) Int2Route {
	return Int2Route{
		DataReady:       int2DRDY.flag(b),
		FIFOThreshold:   int2FTH.flag(b),
		FIFOFull:        int2Diff5.flag(b),
		FIFOOverrun:     int2OVR.flag(b),
		TemperatureDRDY: int2DRDYT.flag(b),
		Boot:            int2Boot.flag(b),
		SleepChange:     int2SleepChg.flag(b),
		SleepState:      int2SleepState.flag(b),
	}
}

func (r Int2Route) encode() byte {
	return int2DRDY.put(bit(r.DataReady)) |
		int2FTH.put(bit(r.FIFOThreshold)) |
		int2Diff5.put(bit(r.FIFOFull)) |
		int2OVR.put(bit(r.FIFOOverrun)) |
		int2DRDYT.put(bit(r.TemperatureDRDY)) |
		int2Boot.put(bit(r.Boot)) |
		int2SleepChg.put(bit(r.SleepChange)) |
		int2SleepState.put(bit(r.SleepState))
}

// CTRL6
var (
	ctrl6FDS    = field{3, 1}
	ctrl6FS     = field{4, 2}
	ctrl6BWFilt = field{6, 2}
)

const ctrl6Reserved byte = 0b0000_0111

type ctrl6 struct {
	fds      uint8
	fs       uint8
	bwFilt   uint8
	reserved byte
}

func decodeCtrl6(b byte) ctrl6 {
	return ctrl6{
		fds:      ctrl6FDS.get(b),
		fs:       ctrl6FS.get(b),
		bwFilt:   ctrl6BWFilt.get(b),
		reserved: b & ctrl6Reserved,
	}
}

func (r ctrl6) encode() byte {
	return ctrl6FDS.put(r.fds) | ctrl6FS.put(r.fs) | ctrl6BWFilt.put(r.bwFilt) | r.reserved&ctrl6Reserved
}

// FIFO_CTRL
var (
	fifoCtrlFTH   = field{0, 5}
	fifoCtrlFMode = field{5, 3}
)

type fifoCtrl struct {
	fth   uint8
	fmode uint8
}

func decodeFIFOCtrl(b byte) fifoCtrl {
	return fifoCtrl{fth: fifoCtrlFTH.get(b), fmode: fifoCtrlFMode.get(b)}
}

func (r fifoCtrl) encode() byte {
	return fifoCtrlFTH.put(r.fth) | fifoCtrlFMode.put(r.fmode)
}

// FIFO_SAMPLES, read only
var (
	fifoSamplesDiff = field{0, 6}
	fifoSamplesOVR  = field{6, 1}
	fifoSamplesFTH  = field{7, 1}
)

// SIXD_THS
var (
	sixdThs6DThs = field{5, 2}
	sixdThs4DEn  = field{7, 1}
)

const sixdThsReserved byte = 0b0001_1111

type sixdThs struct {
	ths      uint8
	fourD    bool
	reserved byte
}

func decodeSixDThs(b byte) sixdThs {
	return sixdThs{
		ths:      sixdThs6DThs.get(b),
		fourD:    sixdThs4DEn.flag(b),
		reserved: b & sixdThsReserved,
	}
}

func (r sixdThs) encode() byte {
	return sixdThs6DThs.put(r.ths) | sixdThs4DEn.put(bit(r.fourD)) | r.reserved&sixdThsReserved
}

// WAKE_UP_THS
var (
	wakeUpThsWkThs   = field{0, 6}
	wakeUpThsSleepOn = field{6, 1}
)

const wakeUpThsReserved byte = 0b1000_0000

type wakeUpThs struct {
	wkThs    uint8
	sleepOn  uint8
	reserved byte
}

func decodeWakeUpThs(b byte) wakeUpThs {
	return wakeUpThs{
		wkThs:    wakeUpThsWkThs.get(b),
		sleepOn:  wakeUpThsSleepOn.get(b),
		reserved: b & wakeUpThsReserved,
	}
}

func (r wakeUpThs) encode() byte {
	return wakeUpThsWkThs.put(r.wkThs) | wakeUpThsSleepOn.put(r.sleepOn) | r.reserved&wakeUpThsReserved
}

// WAKE_UP_DUR
var (
	wakeUpDurSleepDur   = field{0, 4}
	wakeUpDurStationary = field{4, 1}
	wakeUpDurWakeDur    = field{5, 2}
	wakeUpDurFFDur      = field{7, 1}
)

type wakeUpDur struct {
	sleepDur   uint8
	stationary uint8
	wakeDur    uint8
	ffDur      uint8
}

func decodeWakeUpDur(b byte) wakeUpDur {
	return wakeUpDur{
		sleepDur:   wakeUpDurSleepDur.get(b),
		stationary: wakeUpDurStationary.get(b),
		wakeDur:    wakeUpDurWakeDur.get(b),
		ffDur:      wakeUpDurFFDur.get(b),
	}
}

func (r wakeUpDur) encode() byte {
	return wakeUpDurSleepDur.put(r.sleepDur) |
		wakeUpDurStationary.put(r.stationary) |
		wakeUpDurWakeDur.put(r.wakeDur) |
		wakeUpDurFFDur.put(r.ffDur)
}

// FREE_FALL
var (
	freeFallThs = field{0, 3}
	freeFallDur = field{3, 5}
)

type freeFall struct {
	ffThs uint8
	ffDur uint8
}

func decodeFreeFall(b byte) freeFall {
	return freeFall{ffThs: freeFallThs.get(b), ffDur: freeFallDur.get(b)}
}

func (r freeFall) encode() byte {
	return freeFallThs.put(r.ffThs) | freeFallDur.put(r.ffDur)
}

// CTRL7
var (
	ctrl7LPassOn6D        = field{0, 1}
	ctrl7HPRefMode        = field{1, 1}
	ctrl7UsrOffW          = field{2, 1}
	ctrl7UsrOffOnWU       = field{3, 1}
	ctrl7UsrOffOnOut      = field{4, 1}
	ctrl7InterruptsEnable = field{5, 1}
	ctrl7Int2OnInt1       = field{6, 1}
	ctrl7DRDYPulsed       = field{7, 1}
)

type ctrl7 struct {
	lpassOn6D        uint8
	hpRefMode        bool
	usrOffW          uint8
	usrOffOnWU       uint8
	usrOffOnOut      uint8
	interruptsEnable bool
	int2OnInt1       bool
	drdyPulsed       uint8
}

func decodeCtrl7(b byte) ctrl7 {
	return ctrl7{
		lpassOn6D:        ctrl7LPassOn6D.get(b),
		hpRefMode:        ctrl7HPRefMode.flag(b),
		usrOffW:          ctrl7UsrOffW.get(b),
		usrOffOnWU:       ctrl7UsrOffOnWU.get(b),
		usrOffOnOut:      ctrl7UsrOffOnOut.get(b),
		interruptsEnable: ctrl7InterruptsEnable.flag(b),
		int2OnInt1:       ctrl7Int2OnInt1.flag(b),
		drdyPulsed:       ctrl7DRDYPulsed.get(b),
	}
}

func (r ctrl7) encode() byte {
	return ctrl7LPassOn6D.put(r.lpassOn6D) |
		ctrl7HPRefMode.put(bit(r.hpRefMode)) |
		ctrl7UsrOffW.put(r.usrOffW) |
		ctrl7UsrOffOnWU.put(r.usrOffOnWU) |
		ctrl7UsrOffOnOut.put(r.usrOffOnOut) |
		ctrl7InterruptsEnable.put(bit(r.interruptsEnable)) |
		ctrl7Int2OnInt1.put(bit(r.int2OnInt1)) |
		ctrl7DRDYPulsed.put(r.drdyPulsed)
}
