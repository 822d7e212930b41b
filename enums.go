package ais2dw12

import (
	"fmt"
	"strings"
)

// enumTable lists the valid codes of an enumeration with their text names.
type enumTable[T ~uint8] struct {
	kind    string
	entries []enumEntry[T]
}

type enumEntry[T ~uint8] struct {
	value T
	name  string
}

func (t enumTable[T]) name(v T) string {
	for _, e := range t.entries {
		if e.value == v {
			return e.name
		}
	}
	return fmt.Sprintf("%s(0x%02X)", t.kind, uint8(v))
}

// decode maps a raw register key to a member, falling back to def for
// reserved codes.
func (t enumTable[T]) decode(key uint8, def T) T {
	for _, e := range t.entries {
		if uint8(e.value) == key {
			return e.value
		}
	}
	return def
}

func (t enumTable[T]) parse(s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, e := range t.entries {
		if e.name == s {
			return e.value, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", t.kind, s)
}

func (t enumTable[T]) names() []string {
	res := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		res = append(res, e.name)
	}
	return res
}

// PowerMode selects the operating and low-power mode (CTRL1 mode and lp_mode).
type PowerMode uint8

const (
	PowerModeLowPower4           PowerMode = 0x03
	PowerModeLowPower3           PowerMode = 0x02
	PowerModeLowPower2           PowerMode = 0x01
	PowerModeLowPower12bit       PowerMode = 0x00
	PowerModeSingleLowPower4     PowerMode = 0x07
	PowerModeSingleLowPower3     PowerMode = 0x06
	PowerModeSingleLowPower2     PowerMode = 0x05
	PowerModeSingleLowPower12bit PowerMode = 0x04
)

var powerModes = enumTable[PowerMode]{"PowerMode", []enumEntry[PowerMode]{
	{PowerModeLowPower4, "low-power-4"},
	{PowerModeLowPower3, "low-power-3"},
	{PowerModeLowPower2, "low-power-2"},
	{PowerModeLowPower12bit, "low-power-12bit"},
	{PowerModeSingleLowPower4, "single-low-power-4"},
	{PowerModeSingleLowPower3, "single-low-power-3"},
	{PowerModeSingleLowPower2, "single-low-power-2"},
	{PowerModeSingleLowPower12bit, "single-low-power-12bit"},
}}

func (m PowerMode) String() string                { return powerModes.name(m) }
func (m PowerMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *PowerMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, powerModes, b) }

// DataRate is the output data rate. The upper nibble carries the
// single-conversion trigger source (CTRL3 slp_mode), the lower nibble the
// CTRL1 odr code.
type DataRate uint8

const (
	DataRateOff             DataRate = 0x00
	DataRate12Hz5           DataRate = 0x01
	DataRate25Hz            DataRate = 0x02
	DataRate50Hz            DataRate = 0x03
	DataRate100Hz           DataRate = 0x04
	DataRateSoftwareTrigger DataRate = 0x32
	DataRatePinTrigger      DataRate = 0x12
)

var dataRates = enumTable[DataRate]{"DataRate", []enumEntry[DataRate]{
	{DataRateOff, "off"},
	{DataRate12Hz5, "12.5hz"},
	{DataRate25Hz, "25hz"},
	{DataRate50Hz, "50hz"},
	{DataRate100Hz, "100hz"},
	{DataRateSoftwareTrigger, "software-trigger"},
	{DataRatePinTrigger, "pin-trigger"},
}}

func (r DataRate) String() string                { return dataRates.name(r) }
func (r DataRate) MarshalText() ([]byte, error)  { return []byte(r.String()), nil }
func (r *DataRate) UnmarshalText(b []byte) error { return unmarshalEnum(r, dataRates, b) }

type FullScale uint8

const (
	FullScale2g FullScale = 0
	FullScale4g FullScale = 1
)

var fullScales = enumTable[FullScale]{"FullScale", []enumEntry[FullScale]{
	{FullScale2g, "2g"},
	{FullScale4g, "4g"},
}}

func (s FullScale) String() string                { return fullScales.name(s) }
func (s FullScale) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *FullScale) UnmarshalText(b []byte) error { return unmarshalEnum(s, fullScales, b) }

// OffsetWeight is the weight of one LSb of the user offset registers.
type OffsetWeight uint8

const (
	OffsetWeight977ug OffsetWeight = 0
	OffsetWeight15mg6 OffsetWeight = 1
)

var offsetWeights = enumTable[OffsetWeight]{"OffsetWeight", []enumEntry[OffsetWeight]{
	{OffsetWeight977ug, "977ug"},
	{OffsetWeight15mg6, "15.6mg"},
}}

func (w OffsetWeight) String() string                { return offsetWeights.name(w) }
func (w OffsetWeight) MarshalText() ([]byte, error)  { return []byte(w.String()), nil }
func (w *OffsetWeight) UnmarshalText(b []byte) error { return unmarshalEnum(w, offsetWeights, b) }

type SelfTest uint8

const (
	SelfTestDisabled SelfTest = 0
	SelfTestPositive SelfTest = 1
	SelfTestNegative SelfTest = 2
)

var selfTests = enumTable[SelfTest]{"SelfTest", []enumEntry[SelfTest]{
	{SelfTestDisabled, "disabled"},
	{SelfTestPositive, "positive"},
	{SelfTestNegative, "negative"},
}}

func (s SelfTest) String() string                { return selfTests.name(s) }
func (s SelfTest) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *SelfTest) UnmarshalText(b []byte) error { return unmarshalEnum(s, selfTests, b) }

type DataReadyMode uint8

const (
	DataReadyLatched DataReadyMode = 0
	DataReadyPulsed  DataReadyMode = 1
)

var dataReadyModes = enumTable[DataReadyMode]{"DataReadyMode", []enumEntry[DataReadyMode]{
	{DataReadyLatched, "latched"},
	{DataReadyPulsed, "pulsed"},
}}

func (m DataReadyMode) String() string                { return dataReadyModes.name(m) }
func (m DataReadyMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *DataReadyMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, dataReadyModes, b) }

// FilterPath selects what feeds the output registers. Bit 4 is CTRL6 fds,
// bit 0 is CTRL7 usr_off_on_out.
type FilterPath uint8

const (
	FilterPathLowPass    FilterPath = 0x00
	FilterPathUserOffset FilterPath = 0x01
	FilterPathHighPass   FilterPath = 0x10
)

var filterPaths = enumTable[FilterPath]{"FilterPath", []enumEntry[FilterPath]{
	{FilterPathLowPass, "low-pass"},
	{FilterPathUserOffset, "user-offset"},
	{FilterPathHighPass, "high-pass"},
}}

func (p FilterPath) String() string                { return filterPaths.name(p) }
func (p FilterPath) MarshalText() ([]byte, error)  { return []byte(p.String()), nil }
func (p *FilterPath) UnmarshalText(b []byte) error { return unmarshalEnum(p, filterPaths, b) }

// Bandwidth is the digital filter cutoff relative to the output data rate.
type Bandwidth uint8

const (
	BandwidthODRDiv2  Bandwidth = 0
	BandwidthODRDiv4  Bandwidth = 1
	BandwidthODRDiv10 Bandwidth = 2
	BandwidthODRDiv20 Bandwidth = 3
)

var bandwidths = enumTable[Bandwidth]{"Bandwidth", []enumEntry[Bandwidth]{
	{BandwidthODRDiv2, "odr/2"},
	{BandwidthODRDiv4, "odr/4"},
	{BandwidthODRDiv10, "odr/10"},
	{BandwidthODRDiv20, "odr/20"},
}}

func (bw Bandwidth) String() string                { return bandwidths.name(bw) }
func (bw Bandwidth) MarshalText() ([]byte, error)  { return []byte(bw.String()), nil }
func (bw *Bandwidth) UnmarshalText(b []byte) error { return unmarshalEnum(bw, bandwidths, b) }

type SPIMode uint8

const (
	SPI4Wire SPIMode = 0
	SPI3Wire SPIMode = 1
)

var spiModes = enumTable[SPIMode]{"SPIMode", []enumEntry[SPIMode]{
	{SPI4Wire, "4-wire"},
	{SPI3Wire, "3-wire"},
}}

func (m SPIMode) String() string                { return spiModes.name(m) }
func (m SPIMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *SPIMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, spiModes, b) }

type I2CMode uint8

const (
	I2CEnabled  I2CMode = 0
	I2CDisabled I2CMode = 1
)

var i2cModes = enumTable[I2CMode]{"I2CMode", []enumEntry[I2CMode]{
	{I2CEnabled, "enabled"},
	{I2CDisabled, "disabled"},
}}

func (m I2CMode) String() string                { return i2cModes.name(m) }
func (m I2CMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *I2CMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, i2cModes, b) }

// CSPullUp controls the internal pull-up on the CS pin.
type CSPullUp uint8

const (
	CSPullUpConnected    CSPullUp = 0
	CSPullUpDisconnected CSPullUp = 1
)

var csPullUps = enumTable[CSPullUp]{"CSPullUp", []enumEntry[CSPullUp]{
	{CSPullUpConnected, "connected"},
	{CSPullUpDisconnected, "disconnected"},
}}

func (p CSPullUp) String() string                { return csPullUps.name(p) }
func (p CSPullUp) MarshalText() ([]byte, error)  { return []byte(p.String()), nil }
func (p *CSPullUp) UnmarshalText(b []byte) error { return unmarshalEnum(p, csPullUps, b) }

type PinPolarity uint8

const (
	ActiveHigh PinPolarity = 0
	ActiveLow  PinPolarity = 1
)

var pinPolarities = enumTable[PinPolarity]{"PinPolarity", []enumEntry[PinPolarity]{
	{ActiveHigh, "active-high"},
	{ActiveLow, "active-low"},
}}

func (p PinPolarity) String() string                { return pinPolarities.name(p) }
func (p PinPolarity) MarshalText() ([]byte, error)  { return []byte(p.String()), nil }
func (p *PinPolarity) UnmarshalText(b []byte) error { return unmarshalEnum(p, pinPolarities, b) }

// IntNotification selects whether interrupt sources are latched until read.
type IntNotification uint8

const (
	IntPulsed  IntNotification = 0
	IntLatched IntNotification = 1
)

var intNotifications = enumTable[IntNotification]{"IntNotification", []enumEntry[IntNotification]{
	{IntPulsed, "pulsed"},
	{IntLatched, "latched"},
}}

func (n IntNotification) String() string               { return intNotifications.name(n) }
func (n IntNotification) MarshalText() ([]byte, error) { return []byte(n.String()), nil }
func (n *IntNotification) UnmarshalText(b []byte) error {
	return unmarshalEnum(n, intNotifications, b)
}

type PinMode uint8

const (
	PushPull  PinMode = 0
	OpenDrain PinMode = 1
)

var pinModes = enumTable[PinMode]{"PinMode", []enumEntry[PinMode]{
	{PushPull, "push-pull"},
	{OpenDrain, "open-drain"},
}}

func (m PinMode) String() string                { return pinModes.name(m) }
func (m PinMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *PinMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, pinModes, b) }

// WakeUpFeed selects the data used by the wake-up function.
type WakeUpFeed uint8

const (
	WakeUpFeedHighPass   WakeUpFeed = 0
	WakeUpFeedUserOffset WakeUpFeed = 1
)

var wakeUpFeeds = enumTable[WakeUpFeed]{"WakeUpFeed", []enumEntry[WakeUpFeed]{
	{WakeUpFeedHighPass, "high-pass"},
	{WakeUpFeedUserOffset, "user-offset"},
}}

func (f WakeUpFeed) String() string                { return wakeUpFeeds.name(f) }
func (f WakeUpFeed) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (f *WakeUpFeed) UnmarshalText(b []byte) error { return unmarshalEnum(f, wakeUpFeeds, b) }

// ActivityMode is the activity/inactivity detection scheme. Bit 1 is
// WAKE_UP_DUR stationary, bit 0 is WAKE_UP_THS sleep_on.
type ActivityMode uint8

const (
	ActivityNone       ActivityMode = 0
	ActivityInactivity ActivityMode = 1
	ActivityStationary ActivityMode = 3
)

var activityModes = enumTable[ActivityMode]{"ActivityMode", []enumEntry[ActivityMode]{
	{ActivityNone, "none"},
	{ActivityInactivity, "act-inact"},
	{ActivityStationary, "stat-motion"},
}}

func (m ActivityMode) String() string                { return activityModes.name(m) }
func (m ActivityMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *ActivityMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, activityModes, b) }

// SixDFeed selects the data used by 6D/4D orientation detection.
type SixDFeed uint8

const (
	SixDFeedODRDiv2 SixDFeed = 0
	SixDFeedLPF2    SixDFeed = 1
)

var sixDFeeds = enumTable[SixDFeed]{"SixDFeed", []enumEntry[SixDFeed]{
	{SixDFeedODRDiv2, "odr/2"},
	{SixDFeedLPF2, "lpf2"},
}}

func (f SixDFeed) String() string                { return sixDFeeds.name(f) }
func (f SixDFeed) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (f *SixDFeed) UnmarshalText(b []byte) error { return unmarshalEnum(f, sixDFeeds, b) }

// FreeFallThreshold is expressed in LSb at ±2g full scale.
type FreeFallThreshold uint8

const (
	FreeFall5LSb  FreeFallThreshold = 0
	FreeFall7LSb  FreeFallThreshold = 1
	FreeFall8LSb  FreeFallThreshold = 2
	FreeFall10LSb FreeFallThreshold = 3
	FreeFall11LSb FreeFallThreshold = 4
	FreeFall13LSb FreeFallThreshold = 5
	FreeFall15LSb FreeFallThreshold = 6
	FreeFall16LSb FreeFallThreshold = 7
)

var freeFallThresholds = enumTable[FreeFallThreshold]{"FreeFallThreshold", []enumEntry[FreeFallThreshold]{
	{FreeFall5LSb, "5lsb"},
	{FreeFall7LSb, "7lsb"},
	{FreeFall8LSb, "8lsb"},
	{FreeFall10LSb, "10lsb"},
	{FreeFall11LSb, "11lsb"},
	{FreeFall13LSb, "13lsb"},
	{FreeFall15LSb, "15lsb"},
	{FreeFall16LSb, "16lsb"},
}}

func (t FreeFallThreshold) String() string               { return freeFallThresholds.name(t) }
func (t FreeFallThreshold) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *FreeFallThreshold) UnmarshalText(b []byte) error {
	return unmarshalEnum(t, freeFallThresholds, b)
}

type FIFOMode uint8

const (
	FIFOBypass         FIFOMode = 0
	FIFOModeFIFO       FIFOMode = 1
	FIFOStreamToFIFO   FIFOMode = 3
	FIFOBypassToStream FIFOMode = 4
	FIFOStream         FIFOMode = 6
)

var fifoModes = enumTable[FIFOMode]{"FIFOMode", []enumEntry[FIFOMode]{
	{FIFOBypass, "bypass"},
	{FIFOModeFIFO, "fifo"},
	{FIFOStreamToFIFO, "stream-to-fifo"},
	{FIFOBypassToStream, "bypass-to-stream"},
	{FIFOStream, "stream"},
}}

func (m FIFOMode) String() string                { return fifoModes.name(m) }
func (m FIFOMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *FIFOMode) UnmarshalText(b []byte) error { return unmarshalEnum(m, fifoModes, b) }

func unmarshalEnum[T ~uint8](dst *T, table enumTable[T], b []byte) error {
	v, err := table.parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Names returns the text names accepted for each enumeration, keyed by type
// name. Used to build CLI help.
func Names() map[string][]string {
	return map[string][]string{
		powerModes.kind:         powerModes.names(),
		dataRates.kind:          dataRates.names(),
		fullScales.kind:         fullScales.names(),
		offsetWeights.kind:      offsetWeights.names(),
		selfTests.kind:          selfTests.names(),
		dataReadyModes.kind:     dataReadyModes.names(),
		filterPaths.kind:        filterPaths.names(),
		bandwidths.kind:         bandwidths.names(),
		spiModes.kind:           spiModes.names(),
		i2cModes.kind:           i2cModes.names(),
		csPullUps.kind:          csPullUps.names(),
		pinPolarities.kind:      pinPolarities.names(),
		intNotifications.kind:   intNotifications.names(),
		pinModes.kind:           pinModes.names(),
		wakeUpFeeds.kind:        wakeUpFeeds.names(),
		activityModes.kind:      activityModes.names(),
		sixDFeeds.kind:          sixDFeeds.names(),
		freeFallThresholds.kind: freeFallThresholds.names(),
		fifoModes.kind:          fifoModes.names(),
	}
}
