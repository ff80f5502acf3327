package fans

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrivnak/pi-fan/internal/configuration"
)

func TestNewFanSelectsBackend(t *testing.T) {
	// GIVEN
	pwmConfig := configuration.FanConfig{Pwm: &configuration.PwmFanConfig{Frequency: 25000}}
	gpioConfig := configuration.FanConfig{Gpio: &configuration.GpioFanConfig{Pin: 18}}
	fileConfig := configuration.FanConfig{File: &configuration.FileFanConfig{Path: "/tmp/pwm"}}

	// WHEN
	pwm, pwmErr := NewFan(pwmConfig)
	gpio, gpioErr := NewFan(gpioConfig)
	file, fileErr := NewFan(fileConfig)
	_, emptyErr := NewFan(configuration.FanConfig{})

	// THEN
	assert.NoError(t, pwmErr)
	assert.IsType(t, &SysfsPwmFan{}, pwm)
	assert.NoError(t, gpioErr)
	assert.IsType(t, &GpioFan{}, gpio)
	assert.NoError(t, fileErr)
	assert.IsType(t, &FileFan{}, file)
	assert.Error(t, emptyErr)
}

func TestSysfsPwmFanId(t *testing.T) {
	// GIVEN
	fan := SysfsPwmFan{
		Config: configuration.FanConfig{
			Pwm: &configuration.PwmFanConfig{Chip: 0, Channel: 1},
		},
	}

	// WHEN
	id := fan.GetId()

	// THEN
	assert.Equal(t, "pwmchip0/pwm1", id)
}

func TestFileFanSetAndGetPwm(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "pwm")
	fan := &FileFan{
		Config: configuration.FanConfig{
			File: &configuration.FileFanConfig{Path: filePath},
		},
	}

	// WHEN
	err := fan.SetPwm(128)

	// THEN
	assert.NoError(t, err)

	value, err := fan.GetPwm()
	assert.NoError(t, err)
	assert.Equal(t, 128, value)
}
