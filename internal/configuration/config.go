package configuration

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/mrivnak/pi-fan/internal/curve"
	"github.com/mrivnak/pi-fan/internal/ui"
	"github.com/spf13/viper"
)

type Configuration struct {
	Settings   SettingsConfig   `json:"settings"`
	FanCurve   FanCurveConfig   `json:"fan_curve" mapstructure:"fan_curve"`
	Sensor     SensorConfig     `json:"sensor"`
	Fan        FanConfig        `json:"fan"`
	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
}

type SettingsConfig struct {
	// UpdateRate is the time between control loop ticks in (fractional) seconds
	UpdateRate float64 `json:"update_rate" mapstructure:"update_rate"`
}

type FanCurveConfig struct {
	// RawCurve is the list of [temperature, speed] control points
	RawCurve []curve.Point `json:"raw_curve" mapstructure:"raw_curve"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

type ApiConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("pi-fan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/pi-fan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("settings.update_rate", 2.0)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.port", 9001)
}

// DetectAndReadConfigFile detects the path of the first existing config file
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return GetFilePath()
}

// GetFilePath returns the path of the config file in use
func GetFilePath() string {
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			curvePointHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	applyRuntimeDefaults(&CurrentConfig)
}

// applyRuntimeDefaults fills in the sensor and fan sub-configurations
// that viper defaults cannot express without breaking the
// "exactly one backend" validation.
func applyRuntimeDefaults(config *Configuration) {
	if config.Sensor.Thermal == nil && config.Sensor.File == nil && config.Sensor.Cmd == nil {
		config.Sensor.Thermal = &ThermalSensorConfig{Zone: 0}
	}

	if config.Fan.Pwm == nil && config.Fan.Gpio == nil && config.Fan.File == nil {
		config.Fan.Pwm = &PwmFanConfig{}
	}
	if config.Fan.Pwm != nil && config.Fan.Pwm.Frequency <= 0 {
		config.Fan.Pwm.Frequency = DefaultPwmFrequency
	}
}
