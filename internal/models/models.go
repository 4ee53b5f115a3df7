package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/samber/lo"
)

// identifies an object in the monitoring platform
type ObjectKey struct {
	AdapterKind string       `json:"adapterKind"`
	ObjectKind  string       `json:"objectKind"`
	Name        string       `json:"name"`
	Identifiers []Identifier `json:"identifiers"`
}

type Identifier struct {
	Key                string `json:"key"`
	Value              string `json:"value"`
	IsPartOfUniqueness bool   `json:"isPartOfUniqueness"`
}

func (k ObjectKey) id() string {
	return strings.Join([]string{k.AdapterKind, k.ObjectKind, k.Name}, "\x00")
}

type Property struct {
	Key         string `json:"key"`
	StringValue string `json:"stringValue"`
	Timestamp   int64  `json:"timestamp"`
}

type Metric struct {
	Key         string  `json:"key"`
	NumberValue float64 `json:"numberValue"`
	Timestamp   int64   `json:"timestamp"`
}

// Object is a system or device together with the attributes collected for it.
type Object struct {
	Key        ObjectKey  `json:"key"`
	Metrics    []Metric   `json:"metrics"`
	Properties []Property `json:"properties"`
	Events     []string   `json:"events"`

	children  []ObjectKey
	timestamp int64
}

func (o *Object) WithProperty(key string, value string) *Object {
	o.Properties = append(o.Properties, Property{Key: key, StringValue: value, Timestamp: o.timestamp})
	return o
}

func (o *Object) WithMetric(key string, value float64) *Object {
	o.Metrics = append(o.Metrics, Metric{Key: key, NumberValue: value, Timestamp: o.timestamp})
	return o
}

// AddChild records a parent/child relationship, ignoring repeats.
func (o *Object) AddChild(child *Object) {
	if lo.ContainsBy(o.children, func(k ObjectKey) bool { return k.id() == child.Key.id() }) {
		return
	}
	o.children = append(o.children, child.Key)
}

func (o *Object) Children() []ObjectKey {
	return o.children
}

func (o *Object) Property(key string) (string, bool) {
	p, found := lo.Find(o.Properties, func(p Property) bool { return p.Key == key })
	return p.StringValue, found
}

func (o *Object) Metric(key string) (float64, bool) {
	m, found := lo.Find(o.Metrics, func(m Metric) bool { return m.Key == key })
	return m.NumberValue, found
}

type Relationship struct {
	Parent   ObjectKey   `json:"parent"`
	Children []ObjectKey `json:"children"`
}

// CollectResult holds everything produced by one collection cycle.
type CollectResult struct {
	objects      []*Object
	byKey        map[string]*Object
	errorMessage string
	timestamp    int64
}

func NewCollectResult() *CollectResult {
	return &CollectResult{
		byKey:     map[string]*Object{},
		timestamp: time.Now().UnixMilli(),
	}
}

// Object returns the object with the given key, creating it on first use.
func (r *CollectResult) Object(adapterKind string, objectKind string, name string) *Object {
	key := ObjectKey{AdapterKind: adapterKind, ObjectKind: objectKind, Name: name, Identifiers: []Identifier{}}
	if obj, found := r.byKey[key.id()]; found {
		return obj
	}
	obj := &Object{
		Key:        key,
		Metrics:    []Metric{},
		Properties: []Property{},
		Events:     []string{},
		timestamp:  r.timestamp,
	}
	r.objects = append(r.objects, obj)
	r.byKey[key.id()] = obj
	return obj
}

func (r *CollectResult) Objects() []*Object {
	return r.objects
}

func (r *CollectResult) ObjectsOfKind(objectKind string) []*Object {
	return lo.Filter(r.objects, func(o *Object, _ int) bool { return o.Key.ObjectKind == objectKind })
}

// WithError appends msg to the result's error message.
func (r *CollectResult) WithError(msg string) {
	r.errorMessage = joinError(r.errorMessage, msg)
}

func (r *CollectResult) ErrorMessage() string {
	return r.errorMessage
}

func (r *CollectResult) Relationships() []Relationship {
	parents := lo.Filter(r.objects, func(o *Object, _ int) bool { return len(o.children) > 0 })
	return lo.Map(parents, func(o *Object, _ int) Relationship {
		return Relationship{Parent: o.Key, Children: o.children}
	})
}

func (r *CollectResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Result        []*Object      `json:"result"`
		Relationships []Relationship `json:"relationships"`
		ErrorMessage  string         `json:"errorMessage,omitempty"`
	}{
		Result:        lo.Ternary(r.objects == nil, []*Object{}, r.objects),
		Relationships: r.Relationships(),
		ErrorMessage:  r.errorMessage,
	})
}

// TestResult is the outcome of a connection test; it passes when ErrorMessage is empty.
type TestResult struct {
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func (r *TestResult) WithError(msg string) {
	r.ErrorMessage = joinError(r.ErrorMessage, msg)
}

func (r *TestResult) Passed() bool {
	return r.ErrorMessage == ""
}

type EndpointResult struct {
	EndpointURLs []string `json:"endpointUrls"`
}

func NewEndpointResult() *EndpointResult {
	return &EndpointResult{EndpointURLs: []string{}}
}

func (r *EndpointResult) WithEndpoint(url string) {
	r.EndpointURLs = append(r.EndpointURLs, url)
}

func joinError(existing string, msg string) string {
	if existing == "" {
		return msg
	}
	return existing + "; " + msg
}
