package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/curve"
)

type MockSensor struct {
	Value int
	Err   error
}

func (sensor MockSensor) GetId() string {
	return "mockSensor"
}

func (sensor MockSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{}
}

func (sensor MockSensor) GetValue() (int, error) {
	return sensor.Value, sensor.Err
}

type MockFan struct {
	LastPwm int
	SetErr  error
}

func (fan MockFan) GetId() string {
	return "mockFan"
}

func (fan MockFan) GetConfig() configuration.FanConfig {
	return configuration.FanConfig{}
}

func (fan *MockFan) Init() error {
	return nil
}

func (fan *MockFan) SetPwm(pwm int) error {
	if fan.SetErr != nil {
		return fan.SetErr
	}
	fan.LastPwm = pwm
	return nil
}

func (fan MockFan) GetPwm() (int, error) {
	return fan.LastPwm, nil
}

func createCurve(t *testing.T, points []curve.Point) *curve.Curve {
	fanCurve, err := curve.NewCurve(points)
	assert.NoError(t, err)
	return fanCurve
}

func TestTickWritesInterpolatedSpeed(t *testing.T) {
	// GIVEN
	sensor := MockSensor{Value: 25}
	fan := &MockFan{}
	fanCurve := createCurve(t, []curve.Point{
		{Temperature: 0, Speed: 0},
		{Temperature: 50, Speed: 500},
	})
	fanController := NewFanController(fan, sensor, fanCurve, time.Second)

	// WHEN
	err := fanController.UpdateFanSpeed()

	// THEN
	assert.NoError(t, err)
	// 250% of the 256-step cycle
	assert.Equal(t, 640, fan.LastPwm)

	snapshot := fanController.Snapshot()
	assert.Equal(t, 25, snapshot.Temperature)
	assert.Equal(t, 250.0, snapshot.TargetSpeed)
	assert.Equal(t, 640, snapshot.Pwm)
	assert.False(t, snapshot.SensorFailed)
}

func TestSensorFailureFallsBackToFixedSpeed(t *testing.T) {
	// GIVEN
	sensor := MockSensor{Err: errors.New("sensor is gone")}
	fan := &MockFan{}
	fanCurve := createCurve(t, []curve.Point{
		{Temperature: 0, Speed: 0},
		{Temperature: 50, Speed: 100},
	})
	fanController := NewFanController(fan, sensor, fanCurve, time.Second)

	// WHEN
	err := fanController.UpdateFanSpeed()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 128, fan.LastPwm)

	snapshot := fanController.Snapshot()
	assert.Equal(t, FallbackSpeed, snapshot.TargetSpeed)
	assert.True(t, snapshot.SensorFailed)
}

func TestFanWriteFailureIsReturned(t *testing.T) {
	// GIVEN
	sensor := MockSensor{Value: 25}
	fan := &MockFan{SetErr: errors.New("pwm channel is gone")}
	fanCurve := createCurve(t, []curve.Point{
		{Temperature: 0, Speed: 0},
		{Temperature: 50, Speed: 100},
	})
	fanController := NewFanController(fan, sensor, fanCurve, time.Second)

	// WHEN
	err := fanController.UpdateFanSpeed()

	// THEN
	assert.Error(t, err)
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	// GIVEN
	sensor := MockSensor{Value: 25}
	fan := &MockFan{}
	fanCurve := createCurve(t, []curve.Point{
		{Temperature: 0, Speed: 0},
		{Temperature: 50, Speed: 100},
	})
	fanController := NewFanController(fan, sensor, fanCurve, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// WHEN
	err := fanController.Run(ctx)

	// THEN
	assert.NoError(t, err)
}

func TestTemperatureAvg(t *testing.T) {
	// GIVEN
	fan := &MockFan{}
	fanCurve := createCurve(t, []curve.Point{
		{Temperature: 0, Speed: 0},
		{Temperature: 50, Speed: 100},
	})

	// WHEN
	ctrl := NewFanController(fan, MockSensor{Value: 20}, fanCurve, time.Second)
	_ = ctrl.UpdateFanSpeed()

	ctrl.(*fanController).sensor = MockSensor{Value: 40}
	_ = ctrl.UpdateFanSpeed()

	// THEN
	assert.Equal(t, 30.0, ctrl.TemperatureAvg())
}
