package codec

import "github.com/unkn0wn-root/fluentjson"

// JSON is a Codec that runs a fluentjson chain for every call.
// The zero value is ready to use and applies the Identity options.
type JSON[V any] struct {
	Dec    fluentjson.DecodeConfig
	Enc    fluentjson.EncodeConfig
	Logger fluentjson.Logger // nil => no logging
}

var _ Codec[struct{}] = JSON[struct{}]{}

// NewJSON returns a JSON codec configured from a preset.
func NewJSON[V any](p fluentjson.Preset) JSON[V] {
	return JSON[V]{Dec: p.DecodeConfig(), Enc: p.EncodeConfig()}
}

func (c JSON[V]) Encode(v V) ([]byte, error) {
	return fluentjson.ToJSON(v).WithConfig(c.Enc).WithLogger(c.Logger).Encode()
}

func (c JSON[V]) Decode(b []byte) (V, error) {
	return fluentjson.FromJSON[V](b).WithConfig(c.Dec).WithLogger(c.Logger).Decode()
}
