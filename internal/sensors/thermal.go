package sensors

import (
	"fmt"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/util"
)

// ThermalSensor reads a thermal zone of the kernel thermal subsystem.
// The zone file reports milli-°C.
type ThermalSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor ThermalSensor) GetId() string {
	return fmt.Sprintf("thermal_zone%d", sensor.Config.Thermal.Zone)
}

func (sensor ThermalSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor ThermalSensor) GetValue() (int, error) {
	filePath := fmt.Sprintf("/sys/class/thermal/thermal_zone%d/temp", sensor.Config.Thermal.Zone)

	milliDegrees, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}

	return milliDegrees / 1000, nil
}
