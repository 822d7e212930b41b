package ais2dw12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumDecodeDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"power mode reserved", powerModes.decode(0x08, PowerModeLowPower4), PowerModeLowPower4},
		{"power mode known", powerModes.decode(0x05, PowerModeLowPower4), PowerModeSingleLowPower2},
		{"data rate reserved odr", dataRates.decode(0x09, DataRateOff), DataRateOff},
		{"data rate reserved trigger", dataRates.decode(0x22, DataRateOff), DataRateOff},
		{"data rate pin trigger", dataRates.decode(0x12, DataRateOff), DataRatePinTrigger},
		{"full scale 8g code", fullScales.decode(2, FullScale2g), FullScale2g},
		{"full scale 16g code", fullScales.decode(3, FullScale2g), FullScale2g},
		{"self test reserved", selfTests.decode(3, SelfTestDisabled), SelfTestDisabled},
		{"filter path fds and offset", filterPaths.decode(0x11, FilterPathLowPass), FilterPathLowPass},
		{"activity stationary only", activityModes.decode(2, ActivityNone), ActivityNone},
		{"fifo reserved", fifoModes.decode(2, FIFOBypass), FIFOBypass},
		{"fifo reserved 7", fifoModes.decode(7, FIFOBypass), FIFOBypass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEnumText(t *testing.T) {
	b, err := DataRateSoftwareTrigger.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "software-trigger", string(b))

	var rate DataRate
	require.NoError(t, rate.UnmarshalText([]byte(" 100Hz ")))
	assert.Equal(t, DataRate100Hz, rate)

	var fs FullScale
	err = fs.UnmarshalText([]byte("8g"))
	assert.ErrorContains(t, err, `unknown FullScale "8g"`)

	assert.Equal(t, "PowerMode(0x08)", PowerMode(0x08).String())
	assert.Equal(t, "odr/20", BandwidthODRDiv20.String())
	assert.Equal(t, "13lsb", FreeFall13LSb.String())
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 19)
	assert.Equal(t, []string{"bypass", "fifo", "stream-to-fifo", "bypass-to-stream", "stream"}, names["FIFOMode"])
	for kind, list := range names {
		assert.NotEmpty(t, list, kind)
	}
}
