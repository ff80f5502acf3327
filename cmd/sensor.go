package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/sensors"
	"github.com/mrivnak/pi-fan/internal/ui"
)

var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current temperature of the configured sensor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		configPath := configuration.DetectAndReadConfigFile()
		configuration.LoadConfig()
		if err := configuration.Validate(configPath); err != nil {
			ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
		}

		sensor, err := sensors.NewSensor(configuration.CurrentConfig.Sensor)
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sensorCmd)
}
