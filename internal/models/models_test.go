package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/wheelibin/smarthub-adapter/internal/models"
)

func Test_CollectResult_Object(t *testing.T) {

	t.Run("should return the same object for the same key", func(t *testing.T) {
		// arrange
		result := models.NewCollectResult()

		// act
		first := result.Object("SmartHomeAdapter", "device", "lamp")
		second := result.Object("SmartHomeAdapter", "device", "lamp")
		other := result.Object("SmartHomeAdapter", "system", "lamp")

		// assert
		assert.Same(t, first, second)
		assert.NotSame(t, first, other)
		assert.Len(t, result.Objects(), 2)
		assert.Len(t, result.ObjectsOfKind("device"), 1)
	})

	t.Run("should expose properties and metrics by key", func(t *testing.T) {
		// arrange
		result := models.NewCollectResult()

		// act
		obj := result.Object("SmartHomeAdapter", "device", "lamp").
			WithProperty("id", "d1").
			WithMetric("version", 1.5)

		// assert
		id, found := obj.Property("id")
		assert.True(t, found)
		assert.Equal(t, "d1", id)
		version, found := obj.Metric("version")
		assert.True(t, found)
		assert.Equal(t, 1.5, version)
		_, found = obj.Property("missing")
		assert.False(t, found)
	})
}

func Test_Object_AddChild(t *testing.T) {

	t.Run("should ignore a child added twice", func(t *testing.T) {
		// arrange
		result := models.NewCollectResult()
		system := result.Object("SmartHomeAdapter", "system", "s1")
		device := result.Object("SmartHomeAdapter", "device", "lamp")

		// act
		system.AddChild(device)
		system.AddChild(device)

		// assert
		assert.Len(t, system.Children(), 1)
		require.Len(t, result.Relationships(), 1)
		assert.Equal(t, system.Key, result.Relationships()[0].Parent)
	})
}

func Test_CollectResult_MarshalJSON(t *testing.T) {

	t.Run("should serialise objects, relationships and the error message", func(t *testing.T) {
		// arrange
		result := models.NewCollectResult()
		system := result.Object("SmartHomeAdapter", "system", "s1").WithProperty("systemid", "s1")
		device := result.Object("SmartHomeAdapter", "device", "lamp").WithMetric("version", 2)
		system.AddChild(device)
		result.WithError("first")
		result.WithError("second")

		// act
		data, err := json.Marshal(result)

		// assert
		require.NoError(t, err)
		assert.Equal(t, int64(2), gjson.GetBytes(data, "result.#").Int())
		assert.Equal(t, "s1", gjson.GetBytes(data, `result.0.properties.#(key=="systemid").stringValue`).String())
		assert.Equal(t, 2.0, gjson.GetBytes(data, `result.1.metrics.#(key=="version").numberValue`).Float())
		assert.Equal(t, "lamp", gjson.GetBytes(data, "relationships.0.children.0.name").String())
		assert.Equal(t, "first; second", gjson.GetBytes(data, "errorMessage").String())
	})

	t.Run("should serialise an empty result with empty lists", func(t *testing.T) {
		data, err := json.Marshal(models.NewCollectResult())

		require.NoError(t, err)
		assert.JSONEq(t, `{"result": [], "relationships": []}`, string(data))
	})
}

func Test_TestResult(t *testing.T) {

	t.Run("should pass until an error is added", func(t *testing.T) {
		result := models.TestResult{}
		assert.True(t, result.Passed())

		result.WithError("The ID is bad")
		assert.False(t, result.Passed())
		assert.Equal(t, "The ID is bad", result.ErrorMessage)
	})
}
