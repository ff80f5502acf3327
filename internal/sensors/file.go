package sensors

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/util"
)

type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return "file"
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) GetValue() (int, error) {
	filePath := sensor.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return 0, err
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}

	degrees, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to read temperature from %s: %w", sensor.GetId(), filePath, err)
	}

	return degrees, nil
}
