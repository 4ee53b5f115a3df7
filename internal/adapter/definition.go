package adapter

import (
	"github.com/wheelibin/smarthub-adapter/internal/constants"
	"github.com/wheelibin/smarthub-adapter/internal/definition"
)

// Definition declares the configuration, credential and object types of the adapter.
func Definition() *definition.AdapterDefinition {
	d := definition.NewAdapterDefinition(constants.AdapterKind, constants.AdapterName)

	d.DefineStringParameter(
		constants.IdentifierID,
		"ID",
		definition.WithDescription("Example identifier. Using a value of 'bad' will cause test connection to fail; any other value will pass."),
		definition.Required(),
	)

	// read by the host to size the adapter's container, never by the adapter
	d.DefineIntParameter(
		constants.IdentifierContainerMemoryLimit,
		"Adapter Memory Limit (MB)",
		definition.WithDescription("Sets the maximum amount of memory the monitoring platform can allocate to the container running this adapter instance."),
		definition.Required(),
		definition.Advanced(),
		definition.WithIntDefault(constants.DefaultContainerMemoryLimit),
	)

	d.DefineStringParameter(
		constants.IdentifierHost,
		"Host",
		definition.WithDescription("FQDN or IP of the SmartHome Central Unit."),
		definition.Required(),
		definition.WithDefault(constants.DefaultHost),
	)

	d.DefineIntParameter(
		constants.IdentifierPort,
		"TCP Port",
		definition.WithDescription("TCP Port SmartHome is listening on."),
		definition.Required(),
		definition.Advanced(),
		definition.WithIntDefault(constants.DefaultPort),
	)

	d.DefineCredentialType(constants.CredentialType, "Credential").
		DefineStringParameter(constants.CredentialUser, "User Name").
		DefinePasswordParameter(constants.CredentialPassword, "Password")

	d.DefineObjectType(constants.ObjectKindSystem, "System").
		DefineStringProperty(constants.PropertySystemID, "SystemID")

	d.DefineObjectType(constants.ObjectKindDevice, "Device").
		DefineStringProperty(constants.PropertyID, "ID").
		DefineStringProperty(constants.PropertySerialNumber, "Serial Number").
		DefineStringProperty(constants.PropertyName, "Name").
		DefineMetric(constants.MetricVersion, "Version")

	return d
}
