package statistics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrivnak/pi-fan/internal/controller"
)

const subsystemController = "controller"

type ControllerCollector struct {
	controller controller.FanController

	temperature    *prometheus.Desc
	temperatureAvg *prometheus.Desc
	sensorFailed   *prometheus.Desc
	targetSpeed    *prometheus.Desc
	pwm            *prometheus.Desc
}

func NewControllerCollector(controller controller.FanController) *ControllerCollector {
	return &ControllerCollector{
		controller: controller,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "temperature_celsius"),
			"Temperature of the last sensor reading",
			nil, nil,
		),
		temperatureAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "temperature_avg_celsius"),
			"Average temperature over the most recent readings",
			nil, nil,
		),
		sensorFailed: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "sensor_failed"),
			"Whether the last sensor reading failed",
			nil, nil,
		),
		targetSpeed: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "target_speed_percent"),
			"Target fan speed computed by the last tick",
			nil, nil,
		),
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemController, "pwm"),
			"PWM value written by the last tick",
			nil, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.temperatureAvg
	ch <- collector.sensorFailed
	ch <- collector.targetSpeed
	ch <- collector.pwm
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot := collector.controller.Snapshot()

	failed := 0.0
	if snapshot.SensorFailed {
		failed = 1.0
	}

	ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, float64(snapshot.Temperature))
	ch <- prometheus.MustNewConstMetric(collector.temperatureAvg, prometheus.GaugeValue, collector.controller.TemperatureAvg())
	ch <- prometheus.MustNewConstMetric(collector.sensorFailed, prometheus.GaugeValue, failed)
	ch <- prometheus.MustNewConstMetric(collector.targetSpeed, prometheus.GaugeValue, snapshot.TargetSpeed)
	ch <- prometheus.MustNewConstMetric(collector.pwm, prometheus.GaugeValue, float64(snapshot.Pwm))
}
