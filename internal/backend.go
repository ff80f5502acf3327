package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrivnak/pi-fan/internal/api"
	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/controller"
	"github.com/mrivnak/pi-fan/internal/curve"
	"github.com/mrivnak/pi-fan/internal/fans"
	"github.com/mrivnak/pi-fan/internal/sensors"
	"github.com/mrivnak/pi-fan/internal/statistics"
	"github.com/mrivnak/pi-fan/internal/ui"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to be able to modify fan speeds, please run pi-fan as root")
	}

	sensor, fan, fanCurve := InitializeObjects()

	updateRate := time.Duration(configuration.CurrentConfig.Settings.UpdateRate * float64(time.Second))
	fanController := controller.NewFanController(fan, sensor, fanCurve, updateRate)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", fan.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Error("Error controlling fan %s: %v", fan.GetId(), err)
			}
			cancel()
		})
	}
	{
		// === Prometheus Exporter
		if configuration.CurrentConfig.Statistics.Enabled {
			statistics.Register(statistics.NewControllerCollector(fanController))

			port := configuration.CurrentConfig.Statistics.Port
			addr := fmt.Sprintf(":%d", port)
			server := &http.Server{Addr: addr, Handler: promhttp.Handler()}

			g.Add(func() error {
				ui.Info("Starting statistics server on port %d...", port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				}
				cancel()
			})
		}
	}
	{
		// === REST API
		if configuration.CurrentConfig.Api.Enabled {
			restService := api.CreateRestService(fanCurve, fanController)

			port := configuration.CurrentConfig.Api.Port
			g.Add(func() error {
				ui.Info("Starting REST api server on port %d...", port)
				err := restService.Start(fmt.Sprintf(":%d", port))
				if err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := restService.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api server: %v", err)
				}
				cancel()
			})
		}
	}
	{
		// === signal handling
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
				return nil
			case <-ctx.Done():
				return nil
			}
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// InitializeObjects builds the sensor, fan and curve from the current
// configuration. Any failure here is fatal, the control loop never
// starts with a broken collaborator.
func InitializeObjects() (sensors.Sensor, fans.Fan, *curve.Curve) {
	config := configuration.CurrentConfig

	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %v", err)
	}
	sensors.SensorMap.Set(sensor.GetId(), sensor)

	fanCurve, err := curve.NewCurve(config.FanCurve.RawCurve)
	if err != nil {
		ui.Fatal("Unable to process fan curve configuration: %v", err)
	}

	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		ui.Fatal("Unable to process fan configuration: %v", err)
	}
	if err := fan.Init(); err != nil {
		ui.Fatal("Unable to initialize fan %s: %v", fan.GetId(), err)
	}
	fans.FanMap.Set(fan.GetId(), fan)

	return sensor, fan, fanCurve
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
