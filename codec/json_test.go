package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/fluentjson"
)

type testStruct struct {
	Name      string    `json:"name"`
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var updated = time.Date(2021, 8, 16, 9, 30, 0, 0, time.UTC)

func TestJSONZeroValueUsesIdentity(t *testing.T) {
	var c JSON[testStruct]

	encoded, err := c.Encode(testStruct{Name: "test", Value: 42, UpdatedAt: updated})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"test","value":42,"updatedAt":"2021-08-16T09:30:00Z"}`, string(encoded))

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "test", decoded.Name)
	assert.True(t, decoded.UpdatedAt.Equal(updated))
}

func TestJSONServerPreset(t *testing.T) {
	c := NewJSON[testStruct](fluentjson.Server)

	encoded, err := c.Encode(testStruct{Name: "srv", Value: 1, UpdatedAt: updated})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"srv","value":1,"updated_at":"2021-08-16T09:30:00Z"}`, string(encoded))

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, 1, decoded.Value)
	assert.True(t, decoded.UpdatedAt.Equal(updated))
}

func TestJSONCustomConfig(t *testing.T) {
	c := JSON[testStruct]{
		Dec: fluentjson.DecodeConfig{Dates: fluentjson.SecondsSince1970, DisallowUnknownFields: true},
		Enc: fluentjson.EncodeConfig{Dates: fluentjson.SecondsSince1970, Formatting: fluentjson.SortedKeys},
	}

	encoded, err := c.Encode(testStruct{Name: "n", Value: 2, UpdatedAt: updated})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"n","updatedAt":1629106200,"value":2}`, string(encoded))

	_, err = c.Decode([]byte(`{"name":"n","other":1}`))
	require.Error(t, err)
}

func TestJSONDecodeInvalid(t *testing.T) {
	var c JSON[testStruct]
	_, err := c.Decode([]byte(`{invalid json}`))
	require.Error(t, err)

	var de *fluentjson.DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestJSONEncodeNil(t *testing.T) {
	var c JSON[*testStruct]
	encoded, err := c.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(encoded))
}

func TestJSONDecodeEmptyObject(t *testing.T) {
	var c JSON[testStruct]
	decoded, err := c.Decode([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, testStruct{}, decoded)
}

func BenchmarkJSONEncode(b *testing.B) {
	c := NewJSON[testStruct](fluentjson.Server)
	v := testStruct{Name: "benchmark", Value: 999, UpdatedAt: updated}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encode(v)
	}
}

func BenchmarkJSONDecode(b *testing.B) {
	c := NewJSON[testStruct](fluentjson.Server)
	data := []byte(`{"name":"benchmark","value":999,"updated_at":"2021-08-16T09:30:00Z"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Decode(data)
	}
}
