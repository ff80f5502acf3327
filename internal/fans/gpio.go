package fans

import (
	"fmt"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/ui"
	"github.com/mrivnak/pi-fan/internal/util"
	"github.com/stianeikeland/go-rpio/v4"
)

// GpioFan drives the fan with hardware PWM on a Broadcom GPIO pin.
type GpioFan struct {
	Config configuration.FanConfig `json:"configuration"`

	pin        rpio.Pin
	lastSetPwm int
}

func (fan GpioFan) GetId() string {
	return fmt.Sprintf("gpio%d", fan.Config.Gpio.Pin)
}

func (fan GpioFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *GpioFan) Init() error {
	gpioConfig := fan.Config.Gpio

	frequency := gpioConfig.Frequency
	if frequency <= 0 {
		frequency = configuration.DefaultPwmFrequency
	}

	if err := rpio.Open(); err != nil {
		return fmt.Errorf("fan %s: unable to open gpio memory range: %w", fan.GetId(), err)
	}

	fan.pin = rpio.Pin(gpioConfig.Pin)
	fan.pin.Mode(rpio.Pwm)
	// the pwm clock runs at cycle-length times the output frequency
	fan.pin.Freq(frequency * PwmCycleLength)
	fan.pin.DutyCycle(0, PwmCycleLength)

	return nil
}

func (fan *GpioFan) SetPwm(pwm int) error {
	ui.Debug("Setting %s to %d ...", fan.GetId(), pwm)

	coerced := util.Coerce(pwm, MinPwmValue, PwmCycleLength)
	fan.pin.DutyCycle(uint32(coerced), PwmCycleLength)
	fan.lastSetPwm = coerced
	return nil
}

func (fan GpioFan) GetPwm() (int, error) {
	// the bcm2835 pwm registers are write-only trough this interface,
	// report the last written value instead
	return fan.lastSetPwm, nil
}
