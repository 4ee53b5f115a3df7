package collector

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/smarthub-adapter/internal/config"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
	"github.com/wheelibin/smarthub-adapter/internal/hub"
	"github.com/wheelibin/smarthub-adapter/internal/models"
	"golang.org/x/oauth2"
)

type hubAPI interface {
	Devices(ctx context.Context, token *oauth2.Token) ([]json.RawMessage, error)
}

// DeviceCollector maps the hub's device list into monitoring objects.
type DeviceCollector struct {
	logger   *log.Logger
	hubAPI   hubAPI
	grouping config.SystemGrouping
}

func NewDeviceCollector(logger *log.Logger, hubAPI hubAPI, grouping config.SystemGrouping) *DeviceCollector {
	return &DeviceCollector{logger: logger, hubAPI: hubAPI, grouping: grouping}
}

// Collect builds a fresh result from the device list. When the list cannot be read the
// result carries the error and no objects; malformed records are skipped individually.
func (c *DeviceCollector) Collect(ctx context.Context, token *oauth2.Token) *models.CollectResult {
	result := models.NewCollectResult()

	records, err := c.hubAPI.Devices(ctx, token)
	if err != nil {
		c.logger.Error("Unable to read device list", "err", err)
		result.WithError(fmt.Sprintf("Device list request failed: %s", err))
		return result
	}
	c.logger.Info("Read device list", "records", len(records))

	devices := lo.FilterMap(records, func(raw json.RawMessage, i int) (hub.Device, bool) {
		device, err := hub.ParseDevice(raw)
		if err != nil {
			c.logger.Warn("Skipping malformed device record", "index", i, "err", err)
			return hub.Device{}, false
		}
		return device, true
	})

	parent := c.addSystems(result)

	seen := map[string]bool{}
	for _, device := range devices {
		if seen[device.Name] {
			c.logger.Warn("Skipping device with duplicate name", "name", device.Name, "id", device.ID)
			continue
		}
		seen[device.Name] = true

		c.logger.Debug("Found device", "id", device.ID, "serialnumber", device.SerialNumber, "name", device.Name, "version", device.VersionText)

		obj := result.Object(constants.AdapterKind, constants.ObjectKindDevice, device.Name).
			WithProperty(constants.PropertyID, device.ID).
			WithProperty(constants.PropertySerialNumber, device.SerialNumber).
			WithProperty(constants.PropertyName, device.Name).
			WithMetric(constants.MetricVersion, device.Version)

		if parent != nil {
			parent.AddChild(obj)
		}
	}

	c.logger.Info("Collected devices", "devices", len(seen), "skipped", len(records)-len(seen))

	return result
}

// addSystems creates the configured system objects and returns the one devices are attached to.
func (c *DeviceCollector) addSystems(result *models.CollectResult) *models.Object {
	if !c.grouping.Enabled {
		return nil
	}

	systemIDs := lo.Uniq(lo.Filter(c.grouping.Systems, func(id string, _ int) bool { return id != "" }))
	if len(systemIDs) == 0 {
		return nil
	}

	systems := lo.Map(systemIDs, func(id string, _ int) *models.Object {
		return result.Object(constants.AdapterKind, constants.ObjectKindSystem, id).
			WithProperty(constants.PropertySystemID, id)
	})

	return systems[0]
}
