package ais2dw12

const (
	sensitivityFS2 float32 = 0.061
	sensitivityFS4 float32 = 0.122
)

func FromFS2ToMg(lsb int16) float32 {
	return float32(lsb) * sensitivityFS2
}

func FromFS4ToMg(lsb int16) float32 {
	return float32(lsb) * sensitivityFS4
}

// FromFS2Mode12bitToMg converts a sample taken in 12-bit low-power mode 1. The
// output registers are left aligned, so the factor is the same as in the
// 14-bit modes.
func FromFS2Mode12bitToMg(lsb int16) float32 {
	return float32(lsb) * sensitivityFS2
}

func FromFS4Mode12bitToMg(lsb int16) float32 {
	return float32(lsb) * sensitivityFS4
}

// FromLSBToCelsius converts OUT_T_L/OUT_T_H. Zero reads as 25°C.
func FromLSBToCelsius(lsb int16) float32 {
	return float32(lsb)/256.0 + 25.0
}

// ToMg converts a raw sample taken at full scale s.
func (s FullScale) ToMg(lsb int16) float32 {
	if s == FullScale4g {
		return FromFS4ToMg(lsb)
	}
	return FromFS2ToMg(lsb)
}
