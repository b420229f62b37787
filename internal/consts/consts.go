package consts

const (
	DefaultFStart = 0.1 // Sweep start frequency (Hz)
	DefaultFStop  = 1e6 // Sweep stop frequency (Hz)
	DefaultPoints = 100 // Sweep point count
)
