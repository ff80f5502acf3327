package fans

import (
	"errors"

	"github.com/mrivnak/pi-fan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	MinPwmValue = 0
	// PwmCycleLength is the native resolution of the fan backends,
	// a PWM value of 256 means 100% duty cycle.
	PwmCycleLength = 256
)

var (
	FanMap = cmap.New[Fan]()
)

type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// Init prepares the underlying device for PWM output.
	// An error here is not recoverable.
	Init() error

	// SetPwm sets the fan speed on the [0..PwmCycleLength] scale.
	// Values outside that range are coerced by the backend.
	SetPwm(pwm int) error

	// GetPwm returns the currently applied PWM value
	GetPwm() (int, error)
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.Pwm != nil {
		return &SysfsPwmFan{
			Config: config,
		}, nil
	}

	if config.Gpio != nil {
		return &GpioFan{
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	return nil, errors.New("no matching fan type for fan configuration")
}
