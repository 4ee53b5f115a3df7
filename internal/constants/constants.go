package constants

import "time"

const AdapterKind = "SmartHomeAdapter"
const AdapterName = "SmartHome Adapter"

// adapter instance identifiers
const IdentifierID = "ID"
const IdentifierHost = "host"
const IdentifierPort = "port"
const IdentifierContainerMemoryLimit = "container_memory_limit"

const DefaultHost = "192.168.0.116"
const DefaultPort = 8080
const DefaultContainerMemoryLimit = 1024

// credential type and fields
const CredentialType = "smarthome_user"
const CredentialUser = "user"
const CredentialPassword = "password"

// object types
const ObjectKindSystem = "system"
const ObjectKindDevice = "device"

// attribute keys
const PropertySystemID = "systemid"
const PropertyID = "id"
const PropertySerialNumber = "serialnumber"
const PropertyName = "name"
const MetricVersion = "version"

// hub api
const PathAuthToken = "auth/token"
const PathDevice = "device"
const PathStatus = "status"
const GrantTypePassword = "password"

const DefaultRequestTimeout = 10 * time.Second

// host methods
const MethodTest = "test"
const MethodCollect = "collect"
const MethodEndpointURLs = "endpoint_urls"
const MethodAdapterDefinition = "adapter_definition"
