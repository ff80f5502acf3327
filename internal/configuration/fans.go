package configuration

const (
	// DefaultPwmFrequency is the PWM frequency in Hz used when the
	// config does not specify one. 25 kHz is the Intel 4-wire fan spec.
	DefaultPwmFrequency = 25000
)

type FanConfig struct {
	Pwm  *PwmFanConfig  `json:"pwm,omitempty"`
	Gpio *GpioFanConfig `json:"gpio,omitempty"`
	File *FileFanConfig `json:"file,omitempty"`
}

// PwmFanConfig drives a channel of a hardware PWM chip exposed by the
// kernel under /sys/class/pwm.
type PwmFanConfig struct {
	Chip      int `json:"chip"`
	Channel   int `json:"channel"`
	Frequency int `json:"frequency"`
}

// GpioFanConfig drives the fan through hardware PWM on a Broadcom GPIO
// pin via the gpio memory range. Only the hardware PWM capable
// pins (12, 13, 18, 19, 40, 41, 45) are valid.
type GpioFanConfig struct {
	Pin       int `json:"pin"`
	Frequency int `json:"frequency"`
}

// FileFanConfig writes the raw PWM value to an arbitrary file, mainly
// useful for testing.
type FileFanConfig struct {
	Path string `json:"path"`
}
