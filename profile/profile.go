// Package profile stores device configurations as YAML documents. Every field
// is optional: Apply writes only what a profile sets, Read fills them all.
//
//	data_rate: 100hz
//	power_mode: low-power-12bit
//	full_scale: 4g
//	wake_up:
//	  threshold: 2
//	  duration: 1
//	int1:
//	  wake_up: true
package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mklimuk/ais2dw12"
)

type Profile struct {
	// Data generation.
	PowerMode       *ais2dw12.PowerMode     `yaml:"power_mode,omitempty"`
	DataRate        *ais2dw12.DataRate      `yaml:"data_rate,omitempty"`
	BlockDataUpdate *bool                   `yaml:"block_data_update,omitempty"`
	FullScale       *ais2dw12.FullScale     `yaml:"full_scale,omitempty"`
	OffsetWeight    *ais2dw12.OffsetWeight  `yaml:"offset_weight,omitempty"`
	UserOffset      *Offset                 `yaml:"user_offset,omitempty"`
	AutoIncrement   *bool                   `yaml:"auto_increment,omitempty"`
	DataReadyMode   *ais2dw12.DataReadyMode `yaml:"data_ready_mode,omitempty"`

	// Filtering.
	FilterPath      *ais2dw12.FilterPath `yaml:"filter_path,omitempty"`
	FilterBandwidth *ais2dw12.Bandwidth  `yaml:"filter_bandwidth,omitempty"`
	ReferenceMode   *bool                `yaml:"reference_mode,omitempty"`

	// Serial interface.
	SPIMode      *ais2dw12.SPIMode  `yaml:"spi_mode,omitempty"`
	I2CInterface *ais2dw12.I2CMode  `yaml:"i2c_interface,omitempty"`
	CSMode       *ais2dw12.CSPullUp `yaml:"cs_mode,omitempty"`

	// Interrupt pins.
	PinPolarity     *ais2dw12.PinPolarity     `yaml:"pin_polarity,omitempty"`
	PinMode         *ais2dw12.PinMode         `yaml:"pin_mode,omitempty"`
	IntNotification *ais2dw12.IntNotification `yaml:"int_notification,omitempty"`
	Int1            *ais2dw12.Int1Route       `yaml:"int1,omitempty"`
	Int2            *ais2dw12.Int2Route       `yaml:"int2,omitempty"`
	AllOnInt1       *bool                     `yaml:"all_on_int1,omitempty"`

	WakeUp      *WakeUp      `yaml:"wake_up,omitempty"`
	Orientation *Orientation `yaml:"orientation,omitempty"`
	FreeFall    *FreeFall    `yaml:"free_fall,omitempty"`
	FIFO        *FIFO        `yaml:"fifo,omitempty"`
}

type Offset struct {
	X *int8 `yaml:"x,omitempty"`
	Y *int8 `yaml:"y,omitempty"`
	Z *int8 `yaml:"z,omitempty"`
}

type WakeUp struct {
	Threshold     *uint8                 `yaml:"threshold,omitempty"`
	Duration      *uint8                 `yaml:"duration,omitempty"`
	Feed          *ais2dw12.WakeUpFeed   `yaml:"feed,omitempty"`
	Activity      *ais2dw12.ActivityMode `yaml:"activity,omitempty"`
	SleepDuration *uint8                 `yaml:"sleep_duration,omitempty"`
}

type Orientation struct {
	Threshold *uint8             `yaml:"threshold,omitempty"`
	FourD     *bool              `yaml:"four_d,omitempty"`
	Feed      *ais2dw12.SixDFeed `yaml:"feed,omitempty"`
}

type FreeFall struct {
	Duration  *uint8                      `yaml:"duration,omitempty"`
	Threshold *ais2dw12.FreeFallThreshold `yaml:"threshold,omitempty"`
}

type FIFO struct {
	Watermark *uint8             `yaml:"watermark,omitempty"`
	Mode      *ais2dw12.FIFOMode `yaml:"mode,omitempty"`
}

func Load(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile: %w", err)
	}
	return Parse(b)
}

// Parse decodes a profile. Unknown keys and unknown enum names are errors.
func Parse(b []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(&p)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse profile: %w", err)
	}
	return &p, nil
}

func (p *Profile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("could not encode profile: %w", err)
	}
	return enc.Close()
}

type step struct {
	name string
	run  func(context.Context) error
}

// set returns a step writing v, or nil when v is unset.
func set[T any](name string, v *T, fn func(context.Context, T) error) *step {
	if v == nil {
		return nil
	}
	val := *v
	return &step{name: name, run: func(ctx context.Context) error {
		return fn(ctx, val)
	}}
}

// Apply writes the profile to the device. When the profile sets a data rate
// the device is powered down first and the rate is written after the other
// settings, so they change while no conversion is running. The serial
// interface settings go last: disabling I2C cuts off the bus an I2C
// adapter writes through.
func (p *Profile) Apply(ctx context.Context, dev *ais2dw12.Dev) error {
	steps := []*step{}
	if p.DataRate != nil {
		off := ais2dw12.DataRateOff
		steps = append(steps, set("power down", &off, dev.SetDataRate))
	}
	steps = append(steps,
		set("auto_increment", p.AutoIncrement, dev.SetAutoIncrement),
		set("block_data_update", p.BlockDataUpdate, dev.SetBlockDataUpdate),
		set("data_ready_mode", p.DataReadyMode, dev.SetDataReadyMode),
		set("power_mode", p.PowerMode, dev.SetPowerMode),
		set("full_scale", p.FullScale, dev.SetFullScale),
		set("filter_path", p.FilterPath, dev.SetFilterPath),
		set("filter_bandwidth", p.FilterBandwidth, dev.SetFilterBandwidth),
		set("reference_mode", p.ReferenceMode, dev.SetReferenceMode),
		set("offset_weight", p.OffsetWeight, dev.SetOffsetWeight),
	)
	if o := p.UserOffset; o != nil {
		steps = append(steps,
			set("user_offset.x", o.X, dev.SetUserOffsetX),
			set("user_offset.y", o.Y, dev.SetUserOffsetY),
			set("user_offset.z", o.Z, dev.SetUserOffsetZ),
		)
	}
	if w := p.WakeUp; w != nil {
		steps = append(steps,
			set("wake_up.threshold", w.Threshold, dev.SetWakeUpThreshold),
			set("wake_up.duration", w.Duration, dev.SetWakeUpDuration),
			set("wake_up.feed", w.Feed, dev.SetWakeUpFeed),
			set("wake_up.activity", w.Activity, dev.SetActivityMode),
			set("wake_up.sleep_duration", w.SleepDuration, dev.SetActivitySleepDuration),
		)
	}
	if o := p.Orientation; o != nil {
		steps = append(steps,
			set("orientation.threshold", o.Threshold, dev.SetSixDThreshold),
			set("orientation.four_d", o.FourD, dev.SetFourDMode),
			set("orientation.feed", o.Feed, dev.SetSixDFeed),
		)
	}
	if f := p.FreeFall; f != nil {
		steps = append(steps,
			set("free_fall.duration", f.Duration, dev.SetFreeFallDuration),
			set("free_fall.threshold", f.Threshold, dev.SetFreeFallThreshold),
		)
	}
	if f := p.FIFO; f != nil {
		steps = append(steps,
			set("fifo.watermark", f.Watermark, dev.SetFIFOWatermark),
			set("fifo.mode", f.Mode, dev.SetFIFOMode),
		)
	}
	steps = append(steps,
		set("pin_polarity", p.PinPolarity, dev.SetPinPolarity),
		set("pin_mode", p.PinMode, dev.SetPinMode),
		set("int_notification", p.IntNotification, dev.SetIntNotification),
		set("int2", p.Int2, dev.SetInt2Route),
		set("int1", p.Int1, dev.SetInt1Route),
		set("all_on_int1", p.AllOnInt1, dev.SetAllOnInt1),
		set("data_rate", p.DataRate, dev.SetDataRate),
		set("spi_mode", p.SPIMode, dev.SetSPIMode),
		set("cs_mode", p.CSMode, dev.SetCSMode),
		set("i2c_interface", p.I2CInterface, dev.SetI2CInterface),
	)
	for _, s := range steps {
		if s == nil {
			continue
		}
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("could not apply %s: %w", s.name, err)
		}
	}
	return nil
}

// get reads one property into a freshly allocated value.
func get[T any](ctx context.Context, name string, dst **T, fn func(context.Context) (T, error)) error {
	v, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", name, err)
	}
	*dst = &v
	return nil
}

// Read snapshots every writable property of the device.
func Read(ctx context.Context, dev *ais2dw12.Dev) (*Profile, error) {
	p := &Profile{
		UserOffset:  &Offset{},
		WakeUp:      &WakeUp{},
		Orientation: &Orientation{},
		FreeFall:    &FreeFall{},
		FIFO:        &FIFO{},
	}
	reads := []func() error{
		func() error { return get(ctx, "power_mode", &p.PowerMode, dev.GetPowerMode) },
		func() error { return get(ctx, "data_rate", &p.DataRate, dev.GetDataRate) },
		func() error { return get(ctx, "block_data_update", &p.BlockDataUpdate, dev.GetBlockDataUpdate) },
		func() error { return get(ctx, "full_scale", &p.FullScale, dev.GetFullScale) },
		func() error { return get(ctx, "offset_weight", &p.OffsetWeight, dev.GetOffsetWeight) },
		func() error { return get(ctx, "user_offset.x", &p.UserOffset.X, dev.GetUserOffsetX) },
		func() error { return get(ctx, "user_offset.y", &p.UserOffset.Y, dev.GetUserOffsetY) },
		func() error { return get(ctx, "user_offset.z", &p.UserOffset.Z, dev.GetUserOffsetZ) },
		func() error { return get(ctx, "auto_increment", &p.AutoIncrement, dev.GetAutoIncrement) },
		func() error { return get(ctx, "data_ready_mode", &p.DataReadyMode, dev.GetDataReadyMode) },
		func() error { return get(ctx, "filter_path", &p.FilterPath, dev.GetFilterPath) },
		func() error { return get(ctx, "filter_bandwidth", &p.FilterBandwidth, dev.GetFilterBandwidth) },
		func() error { return get(ctx, "reference_mode", &p.ReferenceMode, dev.GetReferenceMode) },
		func() error { return get(ctx, "spi_mode", &p.SPIMode, dev.GetSPIMode) },
		func() error { return get(ctx, "i2c_interface", &p.I2CInterface, dev.GetI2CInterface) },
		func() error { return get(ctx, "cs_mode", &p.CSMode, dev.GetCSMode) },
		func() error { return get(ctx, "pin_polarity", &p.PinPolarity, dev.GetPinPolarity) },
		func() error { return get(ctx, "pin_mode", &p.PinMode, dev.GetPinMode) },
		func() error { return get(ctx, "int_notification", &p.IntNotification, dev.GetIntNotification) },
		func() error { return get(ctx, "int1", &p.Int1, dev.GetInt1Route) },
		func() error { return get(ctx, "int2", &p.Int2, dev.GetInt2Route) },
		func() error { return get(ctx, "all_on_int1", &p.AllOnInt1, dev.GetAllOnInt1) },
		func() error { return get(ctx, "wake_up.threshold", &p.WakeUp.Threshold, dev.GetWakeUpThreshold) },
		func() error { return get(ctx, "wake_up.duration", &p.WakeUp.Duration, dev.GetWakeUpDuration) },
		func() error { return get(ctx, "wake_up.feed", &p.WakeUp.Feed, dev.GetWakeUpFeed) },
		func() error { return get(ctx, "wake_up.activity", &p.WakeUp.Activity, dev.GetActivityMode) },
		func() error {
			return get(ctx, "wake_up.sleep_duration", &p.WakeUp.SleepDuration, dev.GetActivitySleepDuration)
		},
		func() error { return get(ctx, "orientation.threshold", &p.Orientation.Threshold, dev.GetSixDThreshold) },
		func() error { return get(ctx, "orientation.four_d", &p.Orientation.FourD, dev.GetFourDMode) },
		func() error { return get(ctx, "orientation.feed", &p.Orientation.Feed, dev.GetSixDFeed) },
		func() error { return get(ctx, "free_fall.duration", &p.FreeFall.Duration, dev.GetFreeFallDuration) },
		func() error { return get(ctx, "free_fall.threshold", &p.FreeFall.Threshold, dev.GetFreeFallThreshold) },
		func() error { return get(ctx, "fifo.watermark", &p.FIFO.Watermark, dev.GetFIFOWatermark) },
		func() error { return get(ctx, "fifo.mode", &p.FIFO.Mode, dev.GetFIFOMode) },
	}
	for _, r := range reads {
		if err := r(); err != nil {
			return nil, err
		}
	}
	return p, nil
}
