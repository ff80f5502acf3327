package cmd

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/mrivnak/pi-fan/cmd/global"
	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/curve"
	"github.com/mrivnak/pi-fan/internal/ui"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the configured fan curve to console",
	Run: func(cmd *cobra.Command, args []string) {
		configPath := configuration.DetectAndReadConfigFile()
		configuration.LoadConfig()
		if err := configuration.Validate(configPath); err != nil {
			ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
		}

		fanCurve, err := curve.NewCurve(configuration.CurrentConfig.FanCurve.RawCurve)
		if err != nil {
			ui.FatalWithoutStacktrace("Unable to process fan curve configuration: %v", err)
		}

		points := fanCurve.Points()

		// print table
		rows := make([][]string, 0, len(points))
		for _, point := range points {
			rows = append(rows, []string{
				strconv.Itoa(point.Temperature),
				strconv.Itoa(point.Speed),
			})
		}
		tab := table.Table{
			Headers: []string{"Temperature (°C)", "Speed (%)"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			panic(tableErr)
		}
		ui.Printfln(buf.String())

		// print graph
		firstTemp := points[0].Temperature
		lastTemp := points[len(points)-1].Temperature

		values := make([]float64, 0, lastTemp-firstTemp+1)
		for temp := firstTemp; temp <= lastTemp; temp++ {
			values = append(values, fanCurve.GetValueAt(temp))
		}

		caption := "Speed % / Temperature °C"
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)
	},
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
