package ais2dw12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		conv func(int16) float32
		lsb  int16
		want float32
	}{
		{"fs2", FromFS2ToMg, 1024, 62.464},
		{"fs2 negative", FromFS2ToMg, -1024, -62.464},
		{"fs4", FromFS4ToMg, 1024, 124.928},
		{"fs2 12bit", FromFS2Mode12bitToMg, 16384, 999.424},
		{"fs4 12bit", FromFS4Mode12bitToMg, -16384, -1998.848},
		{"fs2 zero", FromFS2ToMg, 0, 0},
		{"celsius zero", FromLSBToCelsius, 0, 25},
		{"celsius one degree", FromLSBToCelsius, 256, 26},
		{"celsius negative", FromLSBToCelsius, -6400, 0},
		{"fullscale 2g", FullScale2g.ToMg, 1024, 62.464},
		{"fullscale 4g", FullScale4g.ToMg, 1024, 124.928},
		{"fullscale reserved", FullScale(3).ToMg, 1024, 62.464},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.conv(tt.lsb), 1e-3)
		})
	}
}
