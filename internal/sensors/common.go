package sensors

import (
	"errors"

	"github.com/mrivnak/pi-fan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature of this sensor in °C
	GetValue() (int, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.Thermal != nil {
		return &ThermalSensor{
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	return nil, errors.New("no matching sensor type for sensor configuration")
}
