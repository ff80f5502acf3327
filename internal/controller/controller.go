package controller

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/mrivnak/pi-fan/internal/curve"
	"github.com/mrivnak/pi-fan/internal/fans"
	"github.com/mrivnak/pi-fan/internal/sensors"
	"github.com/mrivnak/pi-fan/internal/ui"
	"github.com/mrivnak/pi-fan/internal/util"
)

const (
	// FallbackSpeed is the fan speed in percent applied when the sensor
	// cannot be read, so a broken sensor does not silently stop the fan.
	FallbackSpeed = 50.0

	temperatureWindowSize = 30
)

// Snapshot is a read-only view of the last control loop tick.
type Snapshot struct {
	Temperature  int     `json:"temperature"`
	SensorFailed bool    `json:"sensorFailed"`
	TargetSpeed  float64 `json:"targetSpeed"`
	Pwm          int     `json:"pwm"`
}

type FanController interface {
	// Run executes the control loop until the context is cancelled or
	// the fan becomes unwritable
	Run(ctx context.Context) error
	// UpdateFanSpeed executes a single tick of the control loop
	UpdateFanSpeed() error
	// Snapshot returns the state of the last tick
	Snapshot() Snapshot
	// TemperatureAvg returns the average temperature over the last ticks
	TemperatureAvg() float64
}

type fanController struct {
	fan        fans.Fan
	sensor     sensors.Sensor
	curve      *curve.Curve
	updateRate time.Duration

	mu         sync.Mutex
	last       Snapshot
	tempWindow *rolling.PointPolicy
}

func NewFanController(
	fan fans.Fan,
	sensor sensors.Sensor,
	curve *curve.Curve,
	updateRate time.Duration,
) FanController {
	return &fanController{
		fan:        fan,
		sensor:     sensor,
		curve:      curve,
		updateRate: updateRate,
		tempWindow: util.CreateRollingWindow(temperatureWindowSize),
	}
}

func (f *fanController) Run(ctx context.Context) error {
	ui.Info("Starting controller loop for fan '%s'", f.fan.GetId())

	tick := time.Tick(f.updateRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			err := f.UpdateFanSpeed()
			if err != nil {
				// a pwm channel we cannot write to has no recovery path
				return err
			}
		}
	}
}

func (f *fanController) UpdateFanSpeed() error {
	target := f.calculateTargetSpeed()

	pwm := int(math.Round(target * fans.PwmCycleLength / 100.0))
	err := f.fan.SetPwm(pwm)
	if err != nil {
		return fmt.Errorf("unable to set pwm of fan %s: %w", f.fan.GetId(), err)
	}

	f.mu.Lock()
	f.last.TargetSpeed = target
	f.last.Pwm = pwm
	f.mu.Unlock()

	return nil
}

// calculateTargetSpeed computes the target fan speed in percent for the
// current sensor reading.
func (f *fanController) calculateTargetSpeed() float64 {
	temp, err := f.sensor.GetValue()
	if err != nil {
		ui.Warning("Unable to read sensor %s, falling back to %.0f%% fan speed: %v", f.sensor.GetId(), FallbackSpeed, err)

		f.mu.Lock()
		f.last.SensorFailed = true
		f.mu.Unlock()

		return FallbackSpeed
	}

	target := f.curve.GetValueAt(temp)
	ui.Debug("Sensor %s at %d°, desired speed: %.1f%%", f.sensor.GetId(), temp, target)

	f.mu.Lock()
	f.last.Temperature = temp
	f.last.SensorFailed = false
	f.tempWindow.Append(float64(temp))
	f.mu.Unlock()

	return target
}

func (f *fanController) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fanController) TemperatureAvg() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tempWindow.Reduce(rolling.Avg)
}
