package configuration

type SensorConfig struct {
	Thermal *ThermalSensorConfig `json:"thermal,omitempty"`
	File    *FileSensorConfig    `json:"file,omitempty"`
	Cmd     *CmdSensorConfig     `json:"cmd,omitempty"`
}

// ThermalSensorConfig reads a thermal zone exposed by the kernel under
// /sys/class/thermal.
type ThermalSensorConfig struct {
	Zone int `json:"zone"`
}

// FileSensorConfig reads the temperature in °C from an arbitrary file
// containing a single integer.
type FileSensorConfig struct {
	Path string `json:"path"`
}

// CmdSensorConfig obtains the temperature in °C from the output of an
// executable.
type CmdSensorConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
