package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/fans"
	"github.com/mrivnak/pi-fan/internal/ui"
)

var fanCmd = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

var fanSpeedCmd = &cobra.Command{
	Use:   "speed [pwm]",
	Short: "Get the current PWM value of the fan, or set one directly ([0..256])",
	Long:  ``,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		configPath := configuration.DetectAndReadConfigFile()
		configuration.LoadConfig()
		if err := configuration.Validate(configPath); err != nil {
			ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
		}

		fan, err := fans.NewFan(configuration.CurrentConfig.Fan)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			pwmValue, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			if err = fan.Init(); err != nil {
				return err
			}
			return fan.SetPwm(pwmValue)
		}

		pwmValue, err := fan.GetPwm()
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", pwmValue)
		return nil
	},
}

func init() {
	fanCmd.AddCommand(fanSpeedCmd)
	rootCmd.AddCommand(fanCmd)
}
