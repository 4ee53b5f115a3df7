package collector_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/smarthub-adapter/internal/collector"
	"github.com/wheelibin/smarthub-adapter/internal/config"
	"github.com/wheelibin/smarthub-adapter/mocks"
	"golang.org/x/oauth2"
)

var token = &oauth2.Token{AccessToken: "abc", TokenType: "Bearer"}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func record(id string, serial string, name string, version string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":%q,"serialNumber":%q,"config":{"name":%q},"version":%q}`, id, serial, name, version))
}

func Test_Collect(t *testing.T) {

	t.Run("should map a device record to a device object", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{record("d1", "SN1", "dev1", "1.0")}, nil)
		c := collector.NewDeviceCollector(newLogger(), mockHub, config.SystemGrouping{})

		// act
		result := c.Collect(context.Background(), token)

		// assert
		require.Len(t, result.Objects(), 1)
		obj := result.Objects()[0]
		assert.Equal(t, "SmartHomeAdapter", obj.Key.AdapterKind)
		assert.Equal(t, "device", obj.Key.ObjectKind)
		assert.Equal(t, "dev1", obj.Key.Name)
		id, _ := obj.Property("id")
		assert.Equal(t, "d1", id)
		serial, _ := obj.Property("serialnumber")
		assert.Equal(t, "SN1", serial)
		version, found := obj.Metric("version")
		assert.True(t, found)
		assert.Equal(t, 1.0, version)
		assert.Empty(t, result.ErrorMessage())
	})

	t.Run("should log each device with its version as reported", func(t *testing.T) {
		t.Parallel()

		// arrange
		var logs bytes.Buffer
		logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{record("d1", "SN1", "dev1", "1.10")}, nil)
		c := collector.NewDeviceCollector(logger, mockHub, config.SystemGrouping{})

		// act
		c.Collect(context.Background(), token)

		// assert
		assert.Contains(t, logs.String(), "Found device")
		assert.Contains(t, logs.String(), "version=1.10")
	})

	t.Run("should produce one device object per well formed record", func(t *testing.T) {
		t.Parallel()

		// arrange
		records := []json.RawMessage{}
		for i := 0; i < 25; i++ {
			records = append(records, record(fmt.Sprintf("d%d", i), fmt.Sprintf("SN%d", i), fmt.Sprintf("dev%d", i), fmt.Sprintf("%d.5", i)))
		}
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return(records, nil)
		c := collector.NewDeviceCollector(newLogger(), mockHub, config.SystemGrouping{})

		// act
		result := c.Collect(context.Background(), token)

		// assert
		devices := result.ObjectsOfKind("device")
		require.Len(t, devices, 25)
		for i, obj := range devices {
			id, _ := obj.Property("id")
			assert.Equal(t, fmt.Sprintf("d%d", i), id)
			version, _ := obj.Metric("version")
			assert.Equal(t, float64(i)+0.5, version)
		}
		assert.Empty(t, result.ObjectsOfKind("system"))
	})

	t.Run("should skip malformed records and keep the rest", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{
			record("d1", "SN1", "dev1", "1.0"),
			json.RawMessage(`{"id":"d2","serialNumber":"SN2","version":"1.0"}`),
			json.RawMessage(`{"id":"d3","config":{"name":"dev3"},"version":"1.0"}`),
			record("d4", "SN4", "dev4", "2"),
		}, nil)
		c := collector.NewDeviceCollector(newLogger(), mockHub, config.SystemGrouping{})

		// act
		result := c.Collect(context.Background(), token)

		// assert
		devices := result.ObjectsOfKind("device")
		require.Len(t, devices, 2)
		assert.Equal(t, "dev1", devices[0].Key.Name)
		assert.Equal(t, "dev4", devices[1].Key.Name)
		assert.Empty(t, result.ErrorMessage())
	})

	t.Run("should skip NaN and infinite versions and still encode the result", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{
			record("d1", "SN1", "dev1", "1.0"),
			record("d2", "SN2", "dev2", "NaN"),
			record("d3", "SN3", "dev3", "Inf"),
		}, nil)
		c := collector.NewDeviceCollector(newLogger(), mockHub, config.SystemGrouping{})

		// act
		result := c.Collect(context.Background(), token)
		_, err := json.Marshal(result)

		// assert
		require.NoError(t, err)
		devices := result.ObjectsOfKind("device")
		require.Len(t, devices, 1)
		assert.Equal(t, "dev1", devices[0].Key.Name)
	})

	t.Run("should keep only the first of two records with the same name", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{
			record("d1", "SN1", "lamp", "1.0"),
			record("d2", "SN2", "lamp", "1.0"),
		}, nil)
		c := collector.NewDeviceCollector(newLogger(), mockHub, config.SystemGrouping{})

		// act
		result := c.Collect(context.Background(), token)

		// assert
		require.Len(t, result.Objects(), 1)
		id, _ := result.Objects()[0].Property("id")
		assert.Equal(t, "d1", id)
		assert.Len(t, result.Objects()[0].Properties, 3)
	})

	t.Run("error reading the device list: should return no objects and surface the error", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return(nil, fmt.Errorf("hub returned status 500"))
		c := collector.NewDeviceCollector(newLogger(), mockHub, config.SystemGrouping{Enabled: true, Systems: []string{"s1"}})

		// act
		result := c.Collect(context.Background(), token)

		// assert
		assert.Empty(t, result.Objects())
		assert.Contains(t, result.ErrorMessage(), "hub returned status 500")
	})
}

func Test_Collect_SystemGrouping(t *testing.T) {

	t.Run("should attach every device to the first system", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{
			record("d1", "SN1", "dev1", "1.0"),
			record("d2", "SN2", "dev2", "1.1"),
		}, nil)
		grouping := config.SystemGrouping{Enabled: true, Systems: []string{"system-1", "system-2"}}
		c := collector.NewDeviceCollector(newLogger(), mockHub, grouping)

		// act
		result := c.Collect(context.Background(), token)

		// assert
		systems := result.ObjectsOfKind("system")
		require.Len(t, systems, 2)
		systemID, _ := systems[0].Property("systemid")
		assert.Equal(t, "system-1", systemID)
		assert.Len(t, systems[0].Children(), 2)
		assert.Empty(t, systems[1].Children())

		for _, device := range result.ObjectsOfKind("device") {
			parents := 0
			for _, system := range systems {
				for _, child := range system.Children() {
					if child.Name == device.Key.Name {
						parents++
					}
				}
			}
			assert.Equal(t, 1, parents, "device %s", device.Key.Name)
		}
	})

	t.Run("should ignore empty and repeated system ids", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockCollectorHubAPI(t)
		mockHub.On("Devices", mock.Anything, token).Return([]json.RawMessage{}, nil)
		grouping := config.SystemGrouping{Enabled: true, Systems: []string{"", "a", "a", "b"}}
		c := collector.NewDeviceCollector(newLogger(), mockHub, grouping)

		// act
		result := c.Collect(context.Background(), token)

		// assert
		names := []string{}
		for _, obj := range result.ObjectsOfKind("system") {
			names = append(names, obj.Key.Name)
		}
		assert.Equal(t, []string{"a", "b"}, names)
	})
}
