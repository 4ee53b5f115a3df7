package definition_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/wheelibin/smarthub-adapter/internal/definition"
)

func Test_AdapterDefinition(t *testing.T) {

	t.Run("should apply parameter options", func(t *testing.T) {
		// arrange
		d := definition.NewAdapterDefinition("Kind", "Label")

		// act
		d.DefineIntParameter("port", "TCP Port", definition.Required(), definition.Advanced(), definition.WithIntDefault(8080))
		d.DefineStringParameter("host", "Host", definition.WithDescription("FQDN or IP"))

		// assert
		port, found := d.Parameter("port")
		require.True(t, found)
		assert.Equal(t, definition.ParameterInteger, port.Type)
		assert.True(t, port.Required)
		assert.True(t, port.Advanced)
		assert.Equal(t, "8080", port.Default)

		host, found := d.Parameter("host")
		require.True(t, found)
		assert.False(t, host.Required)
		assert.Equal(t, "FQDN or IP", host.Description)
	})

	t.Run("should declare object types with properties and metrics", func(t *testing.T) {
		// arrange
		d := definition.NewAdapterDefinition("Kind", "Label")

		// act
		d.DefineObjectType("device", "Device").
			DefineStringProperty("id", "ID").
			DefineMetric("version", "Version")

		// assert
		device, found := d.ObjectType("device")
		require.True(t, found)
		id, found := device.Attribute("id")
		require.True(t, found)
		assert.Equal(t, definition.AttributeProperty, id.Kind)
		version, found := device.Attribute("version")
		require.True(t, found)
		assert.Equal(t, definition.AttributeMetric, version.Kind)
		_, found = d.ObjectType("system")
		assert.False(t, found)
	})

	t.Run("should mark password credential fields", func(t *testing.T) {
		// arrange
		d := definition.NewAdapterDefinition("Kind", "Label")

		// act
		d.DefineCredentialType("user_cred", "Credential").
			DefineStringParameter("user", "User Name").
			DefinePasswordParameter("password", "Password")
		data, err := json.Marshal(d)

		// assert
		require.NoError(t, err)
		assert.False(t, gjson.GetBytes(data, `credentials.0.fields.#(key=="user").password`).Bool())
		assert.True(t, gjson.GetBytes(data, `credentials.0.fields.#(key=="password").password`).Bool())
	})
}
