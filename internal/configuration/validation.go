package configuration

import (
	"errors"
	"fmt"

	"github.com/mrivnak/pi-fan/internal/util"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validateSettings(config)
	if err != nil {
		return err
	}
	err = validateCurve(config)
	if err != nil {
		return err
	}
	err = validateSensor(config)
	if err != nil {
		return err
	}
	err = validateFan(config)
	if err != nil {
		return err
	}

	if config.Sensor.Cmd != nil {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

func validateSettings(config *Configuration) error {
	if config.Settings.UpdateRate <= 0 {
		return fmt.Errorf("settings: update_rate must be > 0, got %f", config.Settings.UpdateRate)
	}

	return nil
}

func validateCurve(config *Configuration) error {
	if len(config.FanCurve.RawCurve) <= 0 {
		return errors.New("fan_curve: raw_curve must contain at least one [temperature, speed] pair")
	}

	return nil
}

func validateSensor(config *Configuration) error {
	sensorConfig := config.Sensor

	subConfigs := 0
	if sensorConfig.Thermal != nil {
		subConfigs++
	}
	if sensorConfig.File != nil {
		subConfigs++
	}
	if sensorConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("sensor: only one sensor type can be used, use one of: thermal | file | cmd")
	}
	if subConfigs <= 0 {
		return errors.New("sensor: sub-configuration for sensor is missing, use one of: thermal | file | cmd")
	}

	if sensorConfig.Thermal != nil && sensorConfig.Thermal.Zone < 0 {
		return fmt.Errorf("sensor: invalid thermal zone, must be >= 0")
	}
	if sensorConfig.File != nil && len(sensorConfig.File.Path) <= 0 {
		return errors.New("sensor: file path is missing")
	}
	if sensorConfig.Cmd != nil && len(sensorConfig.Cmd.Exec) <= 0 {
		return errors.New("sensor: cmd executable is missing")
	}

	return nil
}

func validateFan(config *Configuration) error {
	fanConfig := config.Fan

	subConfigs := 0
	if fanConfig.Pwm != nil {
		subConfigs++
	}
	if fanConfig.Gpio != nil {
		subConfigs++
	}
	if fanConfig.File != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("fan: only one fan type can be used, use one of: pwm | gpio | file")
	}
	if subConfigs <= 0 {
		return errors.New("fan: sub-configuration for fan is missing, use one of: pwm | gpio | file")
	}

	if fanConfig.Pwm != nil {
		if fanConfig.Pwm.Chip < 0 || fanConfig.Pwm.Channel < 0 {
			return errors.New("fan: pwm chip and channel must be >= 0")
		}
		if fanConfig.Pwm.Frequency <= 0 {
			return fmt.Errorf("fan: invalid pwm frequency: %d", fanConfig.Pwm.Frequency)
		}
	}
	if fanConfig.Gpio != nil {
		if !isHardwarePwmPin(fanConfig.Gpio.Pin) {
			return fmt.Errorf("fan: gpio pin %d is not hardware PWM capable", fanConfig.Gpio.Pin)
		}
	}
	if fanConfig.File != nil && len(fanConfig.File.Path) <= 0 {
		return errors.New("fan: file path is missing")
	}

	return nil
}

func isHardwarePwmPin(pin int) bool {
	switch pin {
	case 12, 13, 18, 19, 40, 41, 45:
		return true
	}
	return false
}
