package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrivnak/pi-fan/internal/curve"
)

func validConfig() Configuration {
	return Configuration{
		Settings: SettingsConfig{
			UpdateRate: 2.0,
		},
		FanCurve: FanCurveConfig{
			RawCurve: []curve.Point{
				{Temperature: 40, Speed: 30},
				{Temperature: 60, Speed: 100},
			},
		},
		Sensor: SensorConfig{
			Thermal: &ThermalSensorConfig{Zone: 0},
		},
		Fan: FanConfig{
			Pwm: &PwmFanConfig{Chip: 0, Channel: 0, Frequency: 25000},
		},
	}
}

func TestValidConfig(t *testing.T) {
	// GIVEN
	config := validConfig()

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestNonPositiveUpdateRate(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Settings.UpdateRate = 0

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestEmptyRawCurve(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.FanCurve.RawCurve = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestMissingSensorBackend(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Sensor = SensorConfig{}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestMultipleSensorBackends(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Sensor.File = &FileSensorConfig{Path: "/tmp/temp"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestMultipleFanBackends(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan.File = &FileFanConfig{Path: "/tmp/pwm"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestInvalidPwmFrequency(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan.Pwm.Frequency = 0

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestGpioPinWithoutHardwarePwm(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan = FanConfig{
		Gpio: &GpioFanConfig{Pin: 17},
	}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.Error(t, err)
}

func TestGpioPinWithHardwarePwm(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan = FanConfig{
		Gpio: &GpioFanConfig{Pin: 18},
	}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}
