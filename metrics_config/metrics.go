package metrics_config

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rainchen/cita-common/common/constants"
)

// Enabled is checked by the constructor functions for all of the
// standard metrics. If it is false, the metric returned is nil.
var enabled = true

func EnableMetrics() {
	enabled = true
}

func DisableMetrics() {
	enabled = false
}

func MetricsEnabled() bool {
	return enabled
}

func NewCounterVec(name string, help string) *prometheus.CounterVec {
	if !enabled {
		return nil
	}
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: constants.METRICS_NAMESPACE,
		Name:      name,
		Help:      help,
	}, []string{"label"})
	prometheus.MustRegister(counterVec)
	return counterVec
}

func NewGaugeVec(name string, help string) *prometheus.GaugeVec {
	if !enabled {
		return nil
	}
	gaugeVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: constants.METRICS_NAMESPACE,
		Name:      name,
		Help:      help,
	}, []string{"label"})
	prometheus.MustRegister(gaugeVec)
	return gaugeVec
}

func NewGauge(name string, help string) prometheus.Gauge {
	if !enabled {
		return nil
	}
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: constants.METRICS_NAMESPACE,
		Name:      name,
		Help:      help,
	})
	prometheus.MustRegister(gauge)
	return gauge
}

// WriteTextfile dumps every registered metric to filename in the text
// exposition format, for collection by a node exporter.
func WriteTextfile(filename string) error {
	if !enabled {
		return nil
	}
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", filename)
	}
	return nil
}
