package ais2dw12

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/ais2dw12/sim"
)

func roundTrip[T comparable](t *testing.T, values []T, set func(context.Context, T) error, get func(context.Context) (T, error)) {
	t.Helper()
	ctx := context.Background()
	for _, v := range values {
		require.NoError(t, set(ctx, v))
		got, err := get(ctx)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	dev := New(sim.New())
	bools := []bool{true, false, true}

	t.Run("power mode", func(t *testing.T) {
		roundTrip(t, []PowerMode{
			PowerModeLowPower4, PowerModeLowPower3, PowerModeLowPower2, PowerModeLowPower12bit,
			PowerModeSingleLowPower4, PowerModeSingleLowPower3, PowerModeSingleLowPower2, PowerModeSingleLowPower12bit,
		}, dev.SetPowerMode, dev.GetPowerMode)
	})
	t.Run("data rate", func(t *testing.T) {
		roundTrip(t, []DataRate{
			DataRate12Hz5, DataRate25Hz, DataRate50Hz, DataRate100Hz,
			DataRateSoftwareTrigger, DataRatePinTrigger, DataRateOff,
		}, dev.SetDataRate, dev.GetDataRate)
	})
	t.Run("block data update", func(t *testing.T) {
		roundTrip(t, bools, dev.SetBlockDataUpdate, dev.GetBlockDataUpdate)
	})
	t.Run("full scale", func(t *testing.T) {
		roundTrip(t, []FullScale{FullScale4g, FullScale2g}, dev.SetFullScale, dev.GetFullScale)
	})
	t.Run("user offsets", func(t *testing.T) {
		offsets := []int8{-128, -1, 0, 1, 127}
		roundTrip(t, offsets, dev.SetUserOffsetX, dev.GetUserOffsetX)
		roundTrip(t, offsets, dev.SetUserOffsetY, dev.GetUserOffsetY)
		roundTrip(t, offsets, dev.SetUserOffsetZ, dev.GetUserOffsetZ)
	})
	t.Run("offset weight", func(t *testing.T) {
		roundTrip(t, []OffsetWeight{OffsetWeight15mg6, OffsetWeight977ug}, dev.SetOffsetWeight, dev.GetOffsetWeight)
	})
	t.Run("auto increment", func(t *testing.T) {
		roundTrip(t, []bool{false, true}, dev.SetAutoIncrement, dev.GetAutoIncrement)
	})
	t.Run("self test", func(t *testing.T) {
		roundTrip(t, []SelfTest{SelfTestPositive, SelfTestNegative, SelfTestDisabled}, dev.SetSelfTest, dev.GetSelfTest)
	})
	t.Run("data ready mode", func(t *testing.T) {
		roundTrip(t, []DataReadyMode{DataReadyPulsed, DataReadyLatched}, dev.SetDataReadyMode, dev.GetDataReadyMode)
	})
	t.Run("filter path", func(t *testing.T) {
		roundTrip(t, []FilterPath{FilterPathHighPass, FilterPathUserOffset, FilterPathLowPass}, dev.SetFilterPath, dev.GetFilterPath)
	})
	t.Run("filter bandwidth", func(t *testing.T) {
		roundTrip(t, []Bandwidth{BandwidthODRDiv4, BandwidthODRDiv10, BandwidthODRDiv20, BandwidthODRDiv2}, dev.SetFilterBandwidth, dev.GetFilterBandwidth)
	})
	t.Run("reference mode", func(t *testing.T) {
		roundTrip(t, bools, dev.SetReferenceMode, dev.GetReferenceMode)
	})
	t.Run("spi mode", func(t *testing.T) {
		roundTrip(t, []SPIMode{SPI3Wire, SPI4Wire}, dev.SetSPIMode, dev.GetSPIMode)
	})
	t.Run("i2c interface", func(t *testing.T) {
		roundTrip(t, []I2CMode{I2CDisabled, I2CEnabled}, dev.SetI2CInterface, dev.GetI2CInterface)
	})
	t.Run("cs mode", func(t *testing.T) {
		roundTrip(t, []CSPullUp{CSPullUpDisconnected, CSPullUpConnected}, dev.SetCSMode, dev.GetCSMode)
	})
	t.Run("pin polarity", func(t *testing.T) {
		roundTrip(t, []PinPolarity{ActiveLow, ActiveHigh}, dev.SetPinPolarity, dev.GetPinPolarity)
	})
	t.Run("int notification", func(t *testing.T) {
		roundTrip(t, []IntNotification{IntLatched, IntPulsed}, dev.SetIntNotification, dev.GetIntNotification)
	})
	t.Run("pin mode", func(t *testing.T) {
		roundTrip(t, []PinMode{OpenDrain, PushPull}, dev.SetPinMode, dev.GetPinMode)
	})
	t.Run("int1 route", func(t *testing.T) {
		roundTrip(t, []Int1Route{
			{DataReady: true},
			{FIFOThreshold: true, FIFOFull: true},
			{FreeFall: true, WakeUp: true, SixD: true},
			{},
		}, dev.SetInt1Route, dev.GetInt1Route)
	})
	t.Run("int2 route", func(t *testing.T) {
		roundTrip(t, []Int2Route{
			{DataReady: true, FIFOThreshold: true, FIFOFull: true, FIFOOverrun: true},
			{TemperatureDRDY: true, Boot: true},
			{SleepChange: true, SleepState: true},
			{},
		}, dev.SetInt2Route, dev.GetInt2Route)
	})
	t.Run("all on int1", func(t *testing.T) {
		roundTrip(t, bools, dev.SetAllOnInt1, dev.GetAllOnInt1)
	})
	t.Run("wake-up threshold", func(t *testing.T) {
		roundTrip(t, []uint8{0x3F, 0x01, 0x20, 0}, dev.SetWakeUpThreshold, dev.GetWakeUpThreshold)
	})
	t.Run("wake-up duration", func(t *testing.T) {
		roundTrip(t, []uint8{3, 1, 2, 0}, dev.SetWakeUpDuration, dev.GetWakeUpDuration)
	})
	t.Run("wake-up feed", func(t *testing.T) {
		roundTrip(t, []WakeUpFeed{WakeUpFeedUserOffset, WakeUpFeedHighPass}, dev.SetWakeUpFeed, dev.GetWakeUpFeed)
	})
	t.Run("activity mode", func(t *testing.T) {
		roundTrip(t, []ActivityMode{ActivityInactivity, ActivityStationary, ActivityNone}, dev.SetActivityMode, dev.GetActivityMode)
	})
	t.Run("activity sleep duration", func(t *testing.T) {
		roundTrip(t, []uint8{0x0F, 0x05, 0}, dev.SetActivitySleepDuration, dev.GetActivitySleepDuration)
	})
	t.Run("6d threshold", func(t *testing.T) {
		roundTrip(t, []uint8{3, 1, 2, 0}, dev.SetSixDThreshold, dev.GetSixDThreshold)
	})
	t.Run("4d mode", func(t *testing.T) {
		roundTrip(t, bools, dev.SetFourDMode, dev.GetFourDMode)
	})
	t.Run("6d feed", func(t *testing.T) {
		roundTrip(t, []SixDFeed{SixDFeedLPF2, SixDFeedODRDiv2}, dev.SetSixDFeed, dev.GetSixDFeed)
	})
	t.Run("free-fall duration", func(t *testing.T) {
		roundTrip(t, []uint8{0x3F, 0x20, 0x1F, 0x21, 0}, dev.SetFreeFallDuration, dev.GetFreeFallDuration)
	})
	t.Run("free-fall threshold", func(t *testing.T) {
		roundTrip(t, []FreeFallThreshold{
			FreeFall7LSb, FreeFall8LSb, FreeFall10LSb, FreeFall11LSb,
			FreeFall13LSb, FreeFall15LSb, FreeFall16LSb, FreeFall5LSb,
		}, dev.SetFreeFallThreshold, dev.GetFreeFallThreshold)
	})
	t.Run("fifo watermark", func(t *testing.T) {
		roundTrip(t, []uint8{0x1F, 0x10, 0}, dev.SetFIFOWatermark, dev.GetFIFOWatermark)
	})
	t.Run("fifo mode", func(t *testing.T) {
		roundTrip(t, []FIFOMode{FIFOModeFIFO, FIFOStreamToFIFO, FIFOBypassToStream, FIFOStream, FIFOBypass}, dev.SetFIFOMode, dev.GetFIFOMode)
	})
}

func TestSingleFieldIsolation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		reg    Register
		seed   byte
		set    func(d *Dev) error
		expect byte
	}{
		{"power mode keeps odr", RegCtrl1, 0xF0, func(d *Dev) error { return d.SetPowerMode(ctx, PowerModeSingleLowPower2) }, 0xF5},
		{"bdu keeps neighbours", RegCtrl2, 0x37, func(d *Dev) error { return d.SetBlockDataUpdate(ctx, true) }, 0x3F},
		{"full scale keeps bandwidth and reserved", RegCtrl6, 0xCF, func(d *Dev) error { return d.SetFullScale(ctx, FullScale4g) }, 0xDF},
		{"bandwidth keeps full scale", RegCtrl6, 0x10, func(d *Dev) error { return d.SetFilterBandwidth(ctx, BandwidthODRDiv20) }, 0xD0},
		{"self test keeps trigger", RegCtrl3, 0x03, func(d *Dev) error { return d.SetSelfTest(ctx, SelfTestNegative) }, 0x83},
		{"latched keeps polarity", RegCtrl3, 0x08, func(d *Dev) error { return d.SetIntNotification(ctx, IntLatched) }, 0x18},
		{"open drain", RegCtrl3, 0x00, func(d *Dev) error { return d.SetPinMode(ctx, OpenDrain) }, 0x20},
		{"offset weight keeps enable", RegCtrl7, 0x20, func(d *Dev) error { return d.SetOffsetWeight(ctx, OffsetWeight15mg6) }, 0x24},
		{"wake-up threshold keeps sleep_on", RegWakeUpThs, 0x40, func(d *Dev) error { return d.SetWakeUpThreshold(ctx, 0xFF) }, 0x7F},
		{"sleep duration keeps ff_dur", RegWakeUpDur, 0x80, func(d *Dev) error { return d.SetActivitySleepDuration(ctx, 0x03) }, 0x83},
		{"4d keeps threshold", RegSixDThs, 0x40, func(d *Dev) error { return d.SetFourDMode(ctx, true) }, 0xC0},
		{"free-fall threshold keeps duration", RegFreeFall, 0xF8, func(d *Dev) error { return d.SetFreeFallThreshold(ctx, FreeFall16LSb) }, 0xFF},
		{"fifo mode keeps watermark", RegFIFOCtrl, 0x0A, func(d *Dev) error { return d.SetFIFOMode(ctx, FIFOStream) }, 0xCA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sim.New(sim.WithRegister(byte(tt.reg), tt.seed))
			require.NoError(t, tt.set(New(s)))
			assert.Equal(t, tt.expect, s.Register(byte(tt.reg)))
			writes := s.Writes()
			require.Len(t, writes, 1)
			assert.Equal(t, byte(tt.reg), writes[0].Reg)
		})
	}
}

func TestReservedCodesReadAsDefault(t *testing.T) {
	ctx := context.Background()
	s := sim.New(
		sim.WithRegister(byte(RegCtrl6), 0x30),
		sim.WithRegister(byte(RegFIFOCtrl), 0xE0),
		sim.WithRegister(byte(RegCtrl3), 0xC0),
		sim.WithRegister(byte(RegWakeUpDur), 0x10),
		sim.WithRegister(byte(RegCtrl1), 0x90),
	)
	dev := New(s)

	fs, err := dev.GetFullScale(ctx)
	require.NoError(t, err)
	assert.Equal(t, FullScale2g, fs)

	fm, err := dev.GetFIFOMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, FIFOBypass, fm)

	st, err := dev.GetSelfTest(ctx)
	require.NoError(t, err)
	assert.Equal(t, SelfTestDisabled, st)

	am, err := dev.GetActivityMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActivityNone, am)

	rate, err := dev.GetDataRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DataRateOff, rate)
}

func TestNumericSettersMaskToFieldWidth(t *testing.T) {
	ctx := context.Background()
	s := sim.New()
	dev := New(s)
	require.NoError(t, dev.SetWakeUpDuration(ctx, 0x07))
	assert.Equal(t, byte(0x60), s.Register(byte(RegWakeUpDur)))
	require.NoError(t, dev.SetFIFOWatermark(ctx, 0x3F))
	assert.Equal(t, byte(0x1F), s.Register(byte(RegFIFOCtrl)))
}

func TestFIFOStatus(t *testing.T) {
	ctx := context.Background()
	dev := New(sim.New(sim.WithRegister(byte(RegFIFOSamples), 0xA5)))

	level, err := dev.GetFIFODataLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x25), level)

	ovr, err := dev.GetFIFOOverrunFlag(ctx)
	require.NoError(t, err)
	assert.False(t, ovr)

	wtm, err := dev.GetFIFOWatermarkFlag(ctx)
	require.NoError(t, err)
	assert.True(t, wtm)
}

func TestResetAndBootBits(t *testing.T) {
	ctx := context.Background()
	var ctrl2 byte
	dev := New(TransportFuncs{
		Read: func(ctx context.Context, reg byte, buf []byte) error {
			buf[0] = ctrl2
			return nil
		},
		Write: func(ctx context.Context, reg byte, buf []byte) error {
			ctrl2 = buf[0]
			return nil
		},
	})
	roundTrip(t, []bool{true, false}, dev.SetReset, dev.GetReset)
	roundTrip(t, []bool{true, false}, dev.SetBoot, dev.GetBoot)
	require.NoError(t, dev.SetBoot(ctx, true))
	assert.Equal(t, byte(0x80), ctrl2)
}
