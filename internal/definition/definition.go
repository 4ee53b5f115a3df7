package definition

import (
	"strconv"

	"github.com/samber/lo"
)

type ParameterType string

const (
	ParameterString  ParameterType = "string"
	ParameterInteger ParameterType = "integer"
)

type Parameter struct {
	Key         string        `json:"key"`
	Label       string        `json:"label"`
	Description string        `json:"description,omitempty"`
	Type        ParameterType `json:"type"`
	Default     string        `json:"default,omitempty"`
	Required    bool          `json:"required"`
	Advanced    bool          `json:"advanced"`
	Password    bool          `json:"password,omitempty"`
}

type ParameterOption func(p *Parameter)

func WithDescription(description string) ParameterOption {
	return func(p *Parameter) { p.Description = description }
}

func Required() ParameterOption {
	return func(p *Parameter) { p.Required = true }
}

func Advanced() ParameterOption {
	return func(p *Parameter) { p.Advanced = true }
}

func WithDefault(value string) ParameterOption {
	return func(p *Parameter) { p.Default = value }
}

func WithIntDefault(value int) ParameterOption {
	return WithDefault(strconv.Itoa(value))
}

type CredentialType struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Fields []Parameter `json:"fields"`
}

func (c *CredentialType) DefineStringParameter(key string, label string) *CredentialType {
	c.Fields = append(c.Fields, Parameter{Key: key, Label: label, Type: ParameterString, Required: true})
	return c
}

func (c *CredentialType) DefinePasswordParameter(key string, label string) *CredentialType {
	c.Fields = append(c.Fields, Parameter{Key: key, Label: label, Type: ParameterString, Required: true, Password: true})
	return c
}

type AttributeKind string

const (
	AttributeProperty AttributeKind = "property"
	AttributeMetric   AttributeKind = "metric"
)

type Attribute struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Kind     AttributeKind `json:"kind"`
	IsString bool          `json:"isString"`
	Unit     string        `json:"unit,omitempty"`
}

type ObjectType struct {
	Key        string      `json:"key"`
	Label      string      `json:"label"`
	Attributes []Attribute `json:"attributes"`
}

func (o *ObjectType) DefineStringProperty(key string, label string) *ObjectType {
	o.Attributes = append(o.Attributes, Attribute{Key: key, Label: label, Kind: AttributeProperty, IsString: true})
	return o
}

func (o *ObjectType) DefineMetric(key string, label string) *ObjectType {
	o.Attributes = append(o.Attributes, Attribute{Key: key, Label: label, Kind: AttributeMetric})
	return o
}

// Attribute looks up an attribute declared on the object type.
func (o *ObjectType) Attribute(key string) (Attribute, bool) {
	return lo.Find(o.Attributes, func(a Attribute) bool { return a.Key == key })
}

// AdapterDefinition is the schema the host platform uses to validate and render collected data.
type AdapterDefinition struct {
	Key         string            `json:"key"`
	Label       string            `json:"label"`
	Parameters  []Parameter       `json:"parameters"`
	Credentials []*CredentialType `json:"credentials"`
	ObjectTypes []*ObjectType     `json:"objectTypes"`
}

func NewAdapterDefinition(key string, label string) *AdapterDefinition {
	return &AdapterDefinition{
		Key:         key,
		Label:       label,
		Parameters:  []Parameter{},
		Credentials: []*CredentialType{},
		ObjectTypes: []*ObjectType{},
	}
}

func (d *AdapterDefinition) DefineStringParameter(key string, label string, opts ...ParameterOption) {
	d.defineParameter(Parameter{Key: key, Label: label, Type: ParameterString}, opts)
}

func (d *AdapterDefinition) DefineIntParameter(key string, label string, opts ...ParameterOption) {
	d.defineParameter(Parameter{Key: key, Label: label, Type: ParameterInteger}, opts)
}

func (d *AdapterDefinition) defineParameter(p Parameter, opts []ParameterOption) {
	for _, opt := range opts {
		opt(&p)
	}
	d.Parameters = append(d.Parameters, p)
}

func (d *AdapterDefinition) DefineCredentialType(key string, label string) *CredentialType {
	c := &CredentialType{Key: key, Label: label, Fields: []Parameter{}}
	d.Credentials = append(d.Credentials, c)
	return c
}

func (d *AdapterDefinition) DefineObjectType(key string, label string) *ObjectType {
	o := &ObjectType{Key: key, Label: label, Attributes: []Attribute{}}
	d.ObjectTypes = append(d.ObjectTypes, o)
	return o
}

func (d *AdapterDefinition) Parameter(key string) (Parameter, bool) {
	return lo.Find(d.Parameters, func(p Parameter) bool { return p.Key == key })
}

func (d *AdapterDefinition) ObjectType(key string) (*ObjectType, bool) {
	return lo.Find(d.ObjectTypes, func(o *ObjectType) bool { return o.Key == key })
}
