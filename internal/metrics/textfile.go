package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
	"github.com/wheelibin/smarthub-adapter/internal/models"
)

// TextfileExporter snapshots a collection into the node_exporter textfile format.
type TextfileExporter struct {
	registry *prometheus.Registry

	deviceVersion *prometheus.GaugeVec
	devices       prometheus.Gauge
	systems       prometheus.Gauge
	duration      prometheus.Gauge
	success       prometheus.Gauge
	lastRun       prometheus.Gauge
}

func NewTextfileExporter() *TextfileExporter {
	e := &TextfileExporter{
		registry: prometheus.NewRegistry(),
		deviceVersion: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "smarthub_device_version",
			Help: "Firmware version reported by the hub for each device",
		}, []string{"device", "id", "serialnumber"}),
		devices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smarthub_collection_devices",
			Help: "Number of device objects produced by the last collection",
		}),
		systems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smarthub_collection_systems",
			Help: "Number of system objects produced by the last collection",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smarthub_collection_duration_seconds",
			Help: "Duration of the last collection",
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smarthub_collection_success",
			Help: "1 if the last collection finished without an error message",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smarthub_collection_last_run_timestamp_seconds",
			Help: "Unix time of the last collection",
		}),
	}

	e.registry.MustRegister(e.deviceVersion, e.devices, e.systems, e.duration, e.success, e.lastRun)

	return e
}

func (e *TextfileExporter) Record(result *models.CollectResult, duration time.Duration, at time.Time) {
	e.deviceVersion.Reset()

	devices := result.ObjectsOfKind(constants.ObjectKindDevice)
	for _, device := range devices {
		version, found := device.Metric(constants.MetricVersion)
		if !found {
			continue
		}
		id, _ := device.Property(constants.PropertyID)
		serial, _ := device.Property(constants.PropertySerialNumber)
		e.deviceVersion.WithLabelValues(device.Key.Name, id, serial).Set(version)
	}

	e.devices.Set(float64(len(devices)))
	e.systems.Set(float64(len(result.ObjectsOfKind(constants.ObjectKindSystem))))
	e.duration.Set(duration.Seconds())
	e.lastRun.Set(float64(at.Unix()))
	if result.ErrorMessage() == "" {
		e.success.Set(1)
	} else {
		e.success.Set(0)
	}
}

// Write replaces the textfile at path with the current snapshot.
func (e *TextfileExporter) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create textfile dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("write textfile %s: %w", path, err)
	}
	return nil
}
