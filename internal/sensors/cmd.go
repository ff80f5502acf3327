package sensors

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/util"
)

type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor CmdSensor) GetId() string {
	return "cmd"
}

func (sensor CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor CmdSensor) GetValue() (int, error) {
	timeout := 2 * time.Second
	exec := sensor.Config.Cmd.Exec
	args := sensor.Config.Cmd.Args

	result, err := util.SafeCmdExecution(exec, args, timeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %s", sensor.GetId(), err.Error())
	}

	temp, err := strconv.Atoi(result)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to read temperature from command output: %s", sensor.GetId(), result)
	}

	return temp, nil
}
